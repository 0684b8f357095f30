package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/contract"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http/middleware"
)

type ContractsHandler struct {
	create   *contract.CreateContract
	get      *contract.GetContract
	list     *contract.ListContracts
	update   *contract.UpdateContract
	delete   *contract.DeleteContract
	stats    *contract.ContractStats
	generate *contract.GenerateContent
	send     *contract.SendForSignature
	sign     *contract.SignContract
	cancel   *contract.CancelContract
	validate *validator.Validate
	log      zerolog.Logger
}

func NewContractsHandler(
	create *contract.CreateContract,
	get *contract.GetContract,
	list *contract.ListContracts,
	update *contract.UpdateContract,
	del *contract.DeleteContract,
	stats *contract.ContractStats,
	generate *contract.GenerateContent,
	send *contract.SendForSignature,
	sign *contract.SignContract,
	cancel *contract.CancelContract,
	log zerolog.Logger,
) *ContractsHandler {
	return &ContractsHandler{
		create:   create,
		get:      get,
		list:     list,
		update:   update,
		delete:   del,
		stats:    stats,
		generate: generate,
		send:     send,
		sign:     sign,
		cancel:   cancel,
		validate: validator.New(),
		log:      log,
	}
}

type partyPayload struct {
	Name           string `json:"name" validate:"required,max=200"`
	Email          string `json:"email" validate:"required,email,max=254"`
	DocumentType   string `json:"document_type" validate:"required,oneof=cpf cnpj"`
	DocumentNumber string `json:"document_number" validate:"required,max=32"`
}

type clausePayload struct {
	Title   string `json:"title" validate:"required,max=300"`
	Content string `json:"content" validate:"required"`
	Order   int    `json:"order" validate:"min=0"`
}

type partyView struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DocumentType   string     `json:"document_type"`
	DocumentNumber string     `json:"document_number"`
	Signed         bool       `json:"signed"`
	SignedAt       *time.Time `json:"signed_at,omitempty"`
}

type clauseView struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type contractView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        string       `json:"type"`
	Status      string       `json:"status"`
	Parties     []partyView  `json:"parties"`
	Clauses     []clauseView `json:"clauses"`
	Value       *float64     `json:"value,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
	Content     string       `json:"content,omitempty"`
	Fingerprint string       `json:"fingerprint,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// toContractView maps a contract to its API shape. Status is the
// effective status, so active contracts past their end date read as
// expired without a write.
func toContractView(c *domain.Contract, now time.Time) contractView {
	parties := make([]partyView, 0, len(c.Parties))
	for _, p := range c.Parties {
		parties = append(parties, partyView{
			Name:           p.Name,
			Email:          p.Email,
			DocumentType:   string(p.DocumentType),
			DocumentNumber: p.DocumentNumber,
			Signed:         p.Signed,
			SignedAt:       p.SignedAt,
		})
	}
	clauses := make([]clauseView, 0, len(c.Clauses))
	for _, cl := range c.SortedClauses() {
		clauses = append(clauses, clauseView{Title: cl.Title, Content: cl.Content, Order: cl.Order})
	}
	return contractView{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
		Status:      string(c.EffectiveStatus(now)),
		Parties:     parties,
		Clauses:     clauses,
		Value:       c.Value,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Content:     c.Content,
		Fingerprint: c.Fingerprint,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toPartyInputs(payloads []partyPayload) []contract.PartyInput {
	if payloads == nil {
		return nil
	}
	out := make([]contract.PartyInput, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, contract.PartyInput{
			Name:           p.Name,
			Email:          SanitizeEmail(p.Email),
			DocumentType:   domain.DocumentType(p.DocumentType),
			DocumentNumber: p.DocumentNumber,
		})
	}
	return out
}

func toClauseInputs(payloads []clausePayload) []contract.ClauseInput {
	if payloads == nil {
		return nil
	}
	out := make([]contract.ClauseInput, 0, len(payloads))
	for _, cl := range payloads {
		out = append(out, contract.ClauseInput{Title: cl.Title, Content: cl.Content, Order: cl.Order})
	}
	return out
}

func contractIDFromPath(r *http.Request) (domain.ContractID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.ContractID{}, false
	}
	return domain.NewContractID(id), true
}

// writeContractErr maps domain errors to HTTP responses.
func (h *ContractsHandler) writeContractErr(w http.ResponseWriter, err error) {
	switch err {
	case domerrors.ErrContractNotFound:
		writeErr(w, http.StatusNotFound, "", err.Error())
	case domerrors.ErrNotOwner:
		writeErr(w, http.StatusForbidden, "", err.Error())
	case domerrors.ErrInvalidState:
		writeErr(w, http.StatusConflict, ErrCodeInvalidState, err.Error())
	case domerrors.ErrIncomplete:
		writeErr(w, http.StatusUnprocessableEntity, ErrCodeIncomplete, err.Error())
	case domerrors.ErrCannotCancelExecuted:
		writeErr(w, http.StatusConflict, ErrCodeInvalidState, err.Error())
	case domerrors.ErrPartyEmailNotFound:
		writeErr(w, http.StatusNotFound, "", err.Error())
	case domerrors.ErrDuplicatePartyEmail:
		writeErr(w, http.StatusBadRequest, "", err.Error())
	default:
		h.log.Error().Err(err).Msg("contract operation failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
	}
}

func (h *ContractsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	var body struct {
		Title       string          `json:"title" validate:"required,max=200"`
		Description string          `json:"description" validate:"max=2000"`
		Type        string          `json:"type" validate:"required,max=100"`
		Parties     []partyPayload  `json:"parties" validate:"dive"`
		Clauses     []clausePayload `json:"clauses" validate:"dive"`
		Value       *float64        `json:"value"`
		StartDate   *time.Time      `json:"start_date"`
		EndDate     *time.Time      `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	c, err := h.create.Execute(r.Context(), contract.CreateContractInput{
		Owner:       user.ID,
		Title:       body.Title,
		Description: body.Description,
		Type:        body.Type,
		Parties:     toPartyInputs(body.Parties),
		Clauses:     toClauseInputs(body.Clauses),
		Value:       body.Value,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	})
	if err != nil {
		h.writeContractErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContractView(c, time.Now()))
}

func (h *ContractsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	filter := ports.ContractFilter{
		Status: domain.Status(r.URL.Query().Get("status")),
		Type:   r.URL.Query().Get("type"),
		Search: r.URL.Query().Get("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeErr(w, http.StatusBadRequest, "", "unknown status")
		return
	}
	contracts, err := h.list.Execute(r.Context(), user.ID, filter)
	if err != nil {
		h.writeContractErr(w, err)
		return
	}
	now := time.Now()
	views := make([]contractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, toContractView(c, now))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"contracts": views})
}

func (h *ContractsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	c, err := h.get.Execute(r.Context(), user.ID, id)
	if err != nil {
		h.writeContractErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toContractView(c, time.Now()))
}

func (h *ContractsHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	var body struct {
		Title       *string         `json:"title" validate:"omitempty,max=200"`
		Description *string         `json:"description" validate:"omitempty,max=2000"`
		Type        *string         `json:"type" validate:"omitempty,max=100"`
		Parties     []partyPayload  `json:"parties" validate:"omitempty,dive"`
		Clauses     []clausePayload `json:"clauses" validate:"omitempty,dive"`
		Value       *float64        `json:"value"`
		StartDate   *time.Time      `json:"start_date"`
		EndDate     *time.Time      `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	c, err := h.update.Execute(r.Context(), contract.UpdateContractInput{
		Owner:       user.ID,
		ContractID:  id,
		Title:       body.Title,
		Description: body.Description,
		Type:        body.Type,
		Parties:     toPartyInputs(body.Parties),
		Clauses:     toClauseInputs(body.Clauses),
		Value:       body.Value,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	})
	if err != nil {
		h.writeContractErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toContractView(c, time.Now()))
}

func (h *ContractsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	if err := h.delete.Execute(r.Context(), user.ID, id); err != nil {
		h.writeContractErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContractsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	stats, err := h.stats.Execute(r.Context(), user.ID)
	if err != nil {
		h.writeContractErr(w, err)
		return
	}
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for _, b := range stats.ByStatus {
		byStatus[string(b.Status)] = b.Count
	}
	byType := make(map[string]int64, len(stats.ByType))
	for _, b := range stats.ByType {
		byType[b.Type] = b.Count
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":               stats.Total,
		"upcoming_expiration": stats.UpcomingExpiration,
		"by_status":           byStatus,
		"by_type":             byType,
	})
}

func (h *ContractsHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	c, err := h.generate.Execute(r.Context(), user.ID, id)
	if err != nil {
		h.writeContractErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toContractView(c, time.Now()))
}

func (h *ContractsHandler) SendForSignature(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	c, err := h.send.Execute(r.Context(), user.ID, id)
	if err != nil {
		AuditLog(h.log, r, "contract.send", user.ID.String(), false, err.Error())
		h.writeContractErr(w, err)
		return
	}
	AuditLog(h.log, r, "contract.send", user.ID.String(), true, "")
	middleware.RecordLifecycleEvent(ports.EventContractSent)
	writeJSON(w, http.StatusOK, toContractView(c, time.Now()))
}

// Sign is the public signature endpoint: a party identifies themselves
// by the email named in the contract.
func (h *ContractsHandler) Sign(w http.ResponseWriter, r *http.Request) {
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	result, err := h.sign.Execute(r.Context(), id, SanitizeEmail(body.Email))
	if err != nil {
		AuditLog(h.log, r, "contract.sign", "", false, err.Error())
		h.writeContractErr(w, err)
		return
	}
	AuditLog(h.log, r, "contract.sign", "", true, "")
	middleware.RecordLifecycleEvent(ports.EventContractSigned)
	if result.Activated {
		middleware.RecordLifecycleEvent(ports.EventContractActivated)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activated": result.Activated,
		"contract":  toContractView(result.Contract, time.Now()),
	})
}

func (h *ContractsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	id, ok := contractIDFromPath(r)
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "invalid contract id")
		return
	}
	c, err := h.cancel.Execute(r.Context(), user.ID, id)
	if err != nil {
		AuditLog(h.log, r, "contract.cancel", user.ID.String(), false, err.Error())
		h.writeContractErr(w, err)
		return
	}
	AuditLog(h.log, r, "contract.cancel", user.ID.String(), true, "")
	middleware.RecordLifecycleEvent(ports.EventContractCancelled)
	writeJSON(w, http.StatusOK, toContractView(c, time.Now()))
}
