package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/orgchart/pkg/buildinfo"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/render"
)

// maxBodyBytes bounds request bodies; move requests are tiny.
const maxBodyBytes = 1 << 16

var extFormats = map[string]string{
	"json": render.FormatJSON,
	"yaml": render.FormatYAML,
	"yml":  render.FormatYAML,
	"dot":  render.FormatDOT,
	"svg":  render.FormatSVG,
	"txt":  render.FormatText,
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type moveRequest struct {
	EmployeeID   *int `json:"employeeId"`
	SupervisorID *int `json:"supervisorId"`
}

type record struct {
	EmployeeID           int `json:"employeeId"`
	PreviousSupervisorID int `json:"previousSupervisorId"`
}

type historyResponse struct {
	Undo []record `json:"undo"`
	Redo []record `json:"redo"`
}

type opResponse struct {
	// Changed is false for undo and redo requests with nothing to do.
	Changed      bool            `json:"changed"`
	EmployeeID   int             `json:"employeeId,omitempty"`
	FromID       int             `json:"fromId,omitempty"`
	SupervisorID int             `json:"supervisorId,omitempty"`
	History      historyResponse `json:"history"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleRenderExt(w http.ResponseWriter, r *http.Request) {
	format, ok := extFormats[chi.URLParam(r, "ext")]
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "unsupported extension %q", chi.URLParam(r, "ext")))
		return
	}
	s.handleRender(format)(w, r)
}

func (s *Server) handleRender(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := renderOptions(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		s.mu.RLock()
		data, hit, err := render.Cached(r.Context(), s.cache, s.chart.Root(), format, opts, s.cacheTTL)
		s.mu.RUnlock()
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", render.ContentType(format))
		if hit {
			w.Header().Set("X-Cache", "hit")
		} else {
			w.Header().Set("X-Cache", "miss")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func renderOptions(r *http.Request) (render.Options, error) {
	q := r.URL.Query()
	var opts render.Options
	if v := q.Get("detailed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid detailed value %q", v)
		}
		opts.Detailed = b
	}
	if v := q.Get("highlight"); v != "" {
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid highlight id %q", part)
			}
			opts.Highlight = append(opts.Highlight, id)
		}
	}
	return opts, nil
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	h := history(s.chart)
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid move request"))
		return
	}
	if req.EmployeeID == nil || req.SupervisorID == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "employeeId and supervisorId are required"))
		return
	}

	s.mu.Lock()
	var fromID int
	if sup := s.chart.Root().Supervisor(*req.EmployeeID); sup != nil {
		fromID = sup.ID
	}
	err := s.chart.Move(*req.EmployeeID, *req.SupervisorID)
	h := history(s.chart)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Debug("moved employee", "employee", *req.EmployeeID, "from", fromID, "to", *req.SupervisorID, "request_id", RequestID(r.Context()))
	writeJSON(w, http.StatusOK, opResponse{
		Changed:      true,
		EmployeeID:   *req.EmployeeID,
		FromID:       fromID,
		SupervisorID: *req.SupervisorID,
		History:      h,
	})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.replay(w, r, (*orgchart.Chart).CanUndo, (*orgchart.Chart).Undo, func(h orgchart.History) []orgchart.Record { return h.Undo })
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.replay(w, r, (*orgchart.Chart).CanRedo, (*orgchart.Chart).Redo, func(h orgchart.History) []orgchart.Record { return h.Redo })
}

// replay runs an undo or redo. The response names the employee that moved,
// taken from the top of the consumed stack.
func (s *Server) replay(w http.ResponseWriter, r *http.Request, can func(*orgchart.Chart) bool, op func(*orgchart.Chart) error, stack func(orgchart.History) []orgchart.Record) {
	s.mu.Lock()
	resp := opResponse{Changed: can(s.chart)}
	if resp.Changed {
		recs := stack(s.chart.History())
		top := recs[len(recs)-1]
		resp.EmployeeID = top.EmployeeID
		resp.SupervisorID = top.PreviousSupervisorID
		if sup := s.chart.Root().Supervisor(top.EmployeeID); sup != nil {
			resp.FromID = sup.ID
		}
	}
	err := op(s.chart)
	resp.History = history(s.chart)
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func history(c *orgchart.Chart) historyResponse {
	h := c.History()
	convert := func(recs []orgchart.Record) []record {
		out := make([]record, len(recs))
		for i, rec := range recs {
			out[i] = record{EmployeeID: rec.EmployeeID, PreviousSupervisorID: rec.PreviousSupervisorID}
		}
		return out
	}
	return historyResponse{Undo: convert(h.Undo), Redo: convert(h.Redo)}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = errors.FromChart(err)
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", RequestID(r.Context()))
	} else {
		s.logger.Debug("request rejected", "code", code, "err", err, "request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
