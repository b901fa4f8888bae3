package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/duitku/backend/internal/application/usecase/obligation"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

type stubObligationRepo struct {
	byID map[string]*entity.Obligation
	err  error
}

func (s *stubObligationRepo) Create(_ context.Context, o *entity.Obligation) (*entity.Obligation, error) {
	if s.err != nil {
		return nil, s.err
	}
	o.ID = "obl-1"
	return o, nil
}

func (s *stubObligationRepo) List(_ context.Context, kind entity.ObligationKind) ([]*entity.Obligation, error) {
	if s.err != nil {
		return nil, s.err
	}
	records := make([]*entity.Obligation, 0, len(s.byID))
	for _, o := range s.byID {
		if o.Kind == kind {
			records = append(records, o)
		}
	}
	return records, nil
}

func (s *stubObligationRepo) FindByID(_ context.Context, _ entity.ObligationKind, id string) (*entity.Obligation, error) {
	if s.err != nil {
		return nil, s.err
	}
	found, ok := s.byID[id]
	if !ok {
		return nil, domainerror.NewStoreError(404, "object_not_found", "no such page")
	}
	return found, nil
}

func (s *stubObligationRepo) Update(_ context.Context, o *entity.Obligation) (*entity.Obligation, error) {
	return o, s.err
}

func (s *stubObligationRepo) Archive(context.Context, entity.ObligationKind, string) error {
	return s.err
}

func newDebtTestRouter(repo *stubObligationRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewObligationController(
		entity.ObligationKindDebt,
		obligation.NewCreateObligationUseCase(repo, noopCache{}),
		obligation.NewListObligationsUseCase(repo),
		obligation.NewGetObligationUseCase(repo),
		obligation.NewUpdateObligationUseCase(repo, noopCache{}),
		obligation.NewRecordPaymentUseCase(repo, noopCache{}),
		obligation.NewArchiveObligationUseCase(repo, noopCache{}),
	)

	engine := gin.New()
	engine.POST("/debts", c.Create)
	engine.GET("/debts/:id", c.Get)
	engine.POST("/debts/:id/payments", c.RecordPayment)
	engine.DELETE("/debts/:id", c.Archive)
	return engine
}

func TestObligationController_Create(t *testing.T) {
	t.Run("valid request returns created envelope with derived fields", func(t *testing.T) {
		engine := newDebtTestRouter(&stubObligationRepo{})

		recorder, envelope := doJSON(t, engine, http.MethodPost, "/debts",
			`{"title":"Cicilan Motor","total":12000000,"paid":3000000}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, true, envelope["success"])
		data, ok := envelope["data"].(map[string]any)
		assert.True(t, ok, "expected data object")
		assert.Equal(t, "obl-1", data["id"])
		assert.Equal(t, float64(9000000), data["remaining"])
	})

	t.Run("zero total is rejected", func(t *testing.T) {
		engine := newDebtTestRouter(&stubObligationRepo{})

		recorder, envelope := doJSON(t, engine, http.MethodPost, "/debts",
			`{"title":"Hutang","total":0}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, false, envelope["success"])
		assert.NotEmpty(t, envelope["message"])
	})

	t.Run("paid over total is rejected", func(t *testing.T) {
		engine := newDebtTestRouter(&stubObligationRepo{})

		recorder, envelope := doJSON(t, engine, http.MethodPost, "/debts",
			`{"title":"Hutang","total":100000,"paid":150000}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, string(domainerror.ErrCodeInvalidPaidAmount), envelope["code"])
	})
}

func TestObligationController_RecordPayment(t *testing.T) {
	t.Run("settled obligation maps to 409", func(t *testing.T) {
		repo := &stubObligationRepo{byID: map[string]*entity.Obligation{
			"d1": {
				ID:     "d1",
				Kind:   entity.ObligationKindDebt,
				Title:  "Cicilan Motor",
				Total:  12000000,
				Paid:   12000000,
				Status: entity.ObligationStatusPaid,
			},
		}}
		engine := newDebtTestRouter(repo)

		recorder, envelope := doJSON(t, engine, http.MethodPost, "/debts/d1/payments",
			`{"amount":500000}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, string(domainerror.ErrCodeObligationSettled), envelope["code"])
	})

	t.Run("non-positive delta maps to 400", func(t *testing.T) {
		engine := newDebtTestRouter(&stubObligationRepo{})

		recorder, envelope := doJSON(t, engine, http.MethodPost, "/debts/d1/payments",
			`{"amount":0}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, false, envelope["success"])
		assert.NotEmpty(t, envelope["message"])
	})

	t.Run("missing obligation maps to 404", func(t *testing.T) {
		engine := newDebtTestRouter(&stubObligationRepo{byID: map[string]*entity.Obligation{}})

		recorder, envelope := doJSON(t, engine, http.MethodPost, "/debts/missing/payments",
			`{"amount":500000}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, string(domainerror.ErrCodeObligationNotFound), envelope["code"])
	})
}

func TestObligationController_Get(t *testing.T) {
	t.Run("missing record maps to 404", func(t *testing.T) {
		engine := newDebtTestRouter(&stubObligationRepo{byID: map[string]*entity.Obligation{}})

		recorder, envelope := doJSON(t, engine, http.MethodGet, "/debts/missing", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, string(domainerror.ErrCodeObligationNotFound), envelope["code"])
	})

	t.Run("store outage maps to 502", func(t *testing.T) {
		repo := &stubObligationRepo{err: domainerror.NewStoreError(503, "service_unavailable", "down")}
		engine := newDebtTestRouter(repo)

		recorder, envelope := doJSON(t, engine, http.MethodGet, "/debts/d1", "")

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.Equal(t, false, envelope["success"])
	})
}

func TestObligationController_Archive(t *testing.T) {
	engine := newDebtTestRouter(&stubObligationRepo{})

	recorder, _ := doJSON(t, engine, http.MethodDelete, "/debts/d1", "")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}
