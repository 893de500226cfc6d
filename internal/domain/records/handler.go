package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/pets"
	"github.com/TFG-DataVet/dvt-back-sub001/internal/domain/records/details"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/records", func(rr chi.Router) {
		rr.Use(requirePet(svc, petsSvc))

		rr.Post("/", createRecordHandler(svc))
		rr.Get("/", listRecordsHandler(svc))
		rr.Get("/{recordID}", getRecordHandler(svc))
		rr.Get("/{recordID}/history", recordHistoryHandler(svc))

		// Correcciones y workflow
		rr.Post("/{recordID}/corrections", correctRecordHandler(svc))
		rr.Post("/{recordID}/actions", applyActionHandler(svc))
	})
}

// createRecordRequest es el cuerpo para registrar una entrada clínica.
type createRecordRequest struct {
	Type          string          `json:"type" enums:"CONSULTATION,VACCINE,TREATMENT,SURGERY,WEIGHT,DIAGNOSIS,ALLERGY,DOCUMENT,HOSPITALIZATION"`
	RecordedBy    string          `json:"recorded_by"`
	InitialStatus string          `json:"initial_status,omitempty" enums:"PENDING,ACTIVE"` // solo tipos con estado
	Detail        json.RawMessage `json:"detail" swaggertype:"object"`
}

// correctRecordRequest trae el detalle completo corregido (no un diff).
type correctRecordRequest struct {
	RecordedBy string          `json:"recorded_by"`
	Detail     json.RawMessage `json:"detail" swaggertype:"object"`
}

type applyActionRequest struct {
	Action string `json:"action" enums:"ACTIVATE,REACTIVE,SUSPEND,FINISH,MARK_NO_SHOW,COMPLETE,DISCHARGE"`
}

// recordResponse representa un registro clínico devuelto por la API.
type recordResponse struct {
	ID             string                      `json:"id"`
	PetID          string                      `json:"pet_id"`
	Type           details.MedicalRecordType   `json:"type"`
	Status         details.MedicalRecordStatus `json:"status,omitempty"`
	Detail         json.RawMessage             `json:"detail" swaggertype:"object"`
	RecordedBy     string                      `json:"recorded_by"`
	RecordedAt     time.Time                   `json:"recorded_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	CorrectsID     string                      `json:"corrects_id,omitempty"`
	SupersededBy   string                      `json:"superseded_by,omitempty"`
	AllowedActions []details.RecordAction      `json:"allowed_actions"`
}

type actionResponse struct {
	Record         recordResponse              `json:"record"`
	PreviousStatus details.MedicalRecordStatus `json:"previous_status"`
	CurrentStatus  details.MedicalRecordStatus `json:"current_status"`
}

// requirePet corta con 404 si la mascota no existe.
func requirePet(svc *Service, petsSvc *pets.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := petsSvc.GetByID(r.Context(), chi.URLParam(r, "petID")); err != nil {
				if errors.Is(err, pets.ErrNotFound) {
					http.Error(w, "pet not found", http.StatusNotFound)
					return
				}
				svc.log.Error("pet lookup failed", map[string]any{"err": err})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// createRecordHandler godoc
// @Summary Crear registro clínico
// @Description Registra una entrada clínica para la mascota. El detalle se valida según el tipo. Los tipos con estado (TREATMENT, SURGERY, HOSPITALIZATION) arrancan en PENDING salvo que se indique ACTIVE.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body createRecordRequest true "Tipo, autor y detalle del registro"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / tipo desconocido / detalle inválido"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		kind, err := details.ParseRecordType(req.Type)
		if err != nil {
			http.Error(w, "unknown record type", http.StatusBadRequest)
			return
		}

		var status details.MedicalRecordStatus
		if strings.TrimSpace(req.InitialStatus) != "" {
			status, err = details.ParseRecordStatus(req.InitialStatus)
			if err != nil {
				http.Error(w, "unknown initial_status", http.StatusBadRequest)
				return
			}
		}

		rec, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), CreateInput{
			Type:          kind,
			RecordedBy:    req.RecordedBy,
			InitialStatus: status,
			Detail:        req.Detail,
		})
		if err != nil {
			writeError(w, svc, err)
			return
		}

		writeRecord(w, svc, http.StatusCreated, rec)
	}
}

// listRecordsHandler godoc
// @Summary Listar registros clínicos de una mascota
// @Description Lista los registros vigentes (más reciente primero). Con include_superseded=true también devuelve versiones reemplazadas por correcciones.
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param types query string false "Lista CSV de tipos (ej: WEIGHT,VACCINE)"
// @Param limit query int false "Máximo de registros (1-200). Por defecto 50"
// @Param include_superseded query bool false "Incluir versiones reemplazadas"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"), filter)
		if err != nil {
			writeError(w, svc, err)
			return
		}

		writeRecords(w, svc, items)
	}
}

// getRecordHandler godoc
// @Summary Obtener registro clínico
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 404 {string} string "pet / record not found"
// @Router /pets/{petID}/records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"))
		if err != nil {
			writeError(w, svc, err)
			return
		}
		writeRecord(w, svc, http.StatusOK, rec)
	}
}

// recordHistoryHandler godoc
// @Summary Historial de correcciones
// @Description Devuelve la cadena de versiones de un registro, de la vigente a la original. Acepta el ID de cualquier versión.
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID de cualquier versión del registro"
// @Success 200 {array} recordResponse
// @Failure 404 {string} string "pet / record not found"
// @Router /pets/{petID}/records/{recordID}/history [get]
func recordHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.History(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"))
		if err != nil {
			writeError(w, svc, err)
			return
		}
		writeRecords(w, svc, items)
	}
}

// correctRecordHandler godoc
// @Summary Corregir registro clínico
// @Description Reemplaza el registro por una versión corregida del mismo tipo. Solo se acepta si el detalle cambia materialmente; los documentos nunca se corrigen.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro vigente"
// @Param payload body correctRecordRequest true "Autor y detalle completo corregido"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / detalle inválido"
// @Failure 404 {string} string "pet / record not found"
// @Failure 409 {string} string "sin cambios / ya reemplazado / conflicto"
// @Router /pets/{petID}/records/{recordID}/corrections [post]
func correctRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req correctRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Correct(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), CorrectInput{
			RecordedBy: req.RecordedBy,
			Detail:     req.Detail,
		})
		if err != nil {
			writeError(w, svc, err)
			return
		}

		writeRecord(w, svc, http.StatusCreated, rec)
	}
}

// applyActionHandler godoc
// @Summary Aplicar acción de workflow
// @Description Cambia el estado de un registro con estado según la tabla de transiciones de su tipo.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Param payload body applyActionRequest true "Acción"
// @Success 200 {object} actionResponse
// @Failure 400 {string} string "invalid json / acción desconocida"
// @Failure 404 {string} string "pet / record not found"
// @Failure 409 {string} string "transición inválida / registro reemplazado"
// @Failure 422 {string} string "el tipo no tiene estado"
// @Router /pets/{petID}/records/{recordID}/actions [post]
func applyActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applyActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		action, err := details.ParseRecordAction(req.Action)
		if err != nil {
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}

		rec, res, err := svc.ApplyAction(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), action)
		if err != nil {
			writeError(w, svc, err)
			return
		}

		out, err := toRecordResponse(rec)
		if err != nil {
			writeError(w, svc, err)
			return
		}
		writeJSON(w, http.StatusOK, actionResponse{
			Record:         out,
			PreviousStatus: res.Previous(),
			CurrentStatus:  res.Current(),
		})
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()

	limit := DefaultListLimit
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxListLimit {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=WEIGHT,VACCINE
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if strings.TrimSpace(p) == "" {
				continue
			}
			t, err := details.ParseRecordType(p)
			if err != nil {
				return ListFilter{}, errors.New("unknown record type in types: " + strings.TrimSpace(p))
			}
			filter.Types = append(filter.Types, t)
		}
	}

	if v := strings.TrimSpace(q.Get("include_superseded")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ListFilter{}, errors.New("include_superseded must be a boolean")
		}
		filter.IncludeSuperseded = b
	}

	return filter, nil
}

// statusFor traduce errores de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, details.ErrInvalidDetail),
		errors.Is(err, details.ErrUnknownRecordType),
		errors.Is(err, details.ErrUnknownStatus),
		errors.Is(err, details.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoChanges),
		errors.Is(err, ErrSuperseded),
		errors.Is(err, ErrConflict),
		errors.Is(err, details.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, details.ErrUnsupportedOperation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, svc *Service, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		svc.log.Error("request failed", map[string]any{"err": err})
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func toRecordResponse(rec MedicalRecord) (recordResponse, error) {
	raw, err := details.Marshal(rec.Detail)
	if err != nil {
		return recordResponse{}, err
	}
	return recordResponse{
		ID:             rec.ID,
		PetID:          rec.PetID,
		Type:           rec.Type,
		Status:         rec.Status,
		Detail:         raw,
		RecordedBy:     rec.RecordedBy,
		RecordedAt:     rec.RecordedAt,
		UpdatedAt:      rec.UpdatedAt,
		CorrectsID:     rec.CorrectsID,
		SupersededBy:   rec.SupersededBy,
		AllowedActions: rec.AllowedActions(),
	}, nil
}

func writeRecord(w http.ResponseWriter, svc *Service, status int, rec MedicalRecord) {
	out, err := toRecordResponse(rec)
	if err != nil {
		writeError(w, svc, err)
		return
	}
	writeJSON(w, status, out)
}

func writeRecords(w http.ResponseWriter, svc *Service, items []MedicalRecord) {
	out := make([]recordResponse, 0, len(items))
	for _, rec := range items {
		resp, err := toRecordResponse(rec)
		if err != nil {
			writeError(w, svc, err)
			return
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}

// mismo helper que en pets
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
