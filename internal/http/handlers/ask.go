package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/http/middleware"
	"fitoapteka.kz/app/internal/http/validation"
	"fitoapteka.kz/app/internal/modules/qa"
	"fitoapteka.kz/app/internal/shared/apperr"
)

type AskHandler struct {
	qa *qa.Service
}

func NewAskHandler(svc *qa.Service) *AskHandler { return &AskHandler{qa: svc} }

type askInput struct {
	Query json.RawMessage `json:"query"`
}

// Ask: POST /api/ask {"query": "..."}
func (h *AskHandler) Ask(c *gin.Context) {
	var in askInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("invalid_body", validation.FromBindError(err, &in)))
		return
	}
	query, ok := queryText(in.Query)
	if !ok {
		middleware.Fail(c, apperr.InvalidErr("invalid_body", map[string]string{"query": "invalid"}))
		return
	}

	ans, err := h.qa.Ask(c.Request.Context(), query)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ans)
}

// queryText stringifies a scalar query: strings as-is, numbers by their
// literal, true as "true". Absent, null and false read as empty.
// Objects and arrays are rejected.
func queryText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", true
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	}
	switch string(raw) {
	case "null", "false":
		return "", true
	case "true":
		return "true", true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}
