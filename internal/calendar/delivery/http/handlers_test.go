package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mcal/internal/calendar"
	"mcal/internal/model"
	"mcal/pkg/log"
)

type fakeUseCase struct {
	err     error
	created calendar.CreateInput
	updated calendar.UpdateInput
}

func (f *fakeUseCase) Create(_ context.Context, in calendar.CreateInput) (calendar.CreateOutput, error) {
	f.created = in
	return calendar.CreateOutput{Calendar: model.Calendar{ID: 7, Name: in.Name, Color: in.Color}}, f.err
}

func (f *fakeUseCase) List(context.Context) (calendar.ListOutput, error) {
	return calendar.ListOutput{Calendars: []model.Calendar{{ID: 1, Name: "Home"}}}, f.err
}

func (f *fakeUseCase) Detail(_ context.Context, id int64) (calendar.DetailOutput, error) {
	return calendar.DetailOutput{Calendar: model.Calendar{ID: id, Name: "Home"}}, f.err
}

func (f *fakeUseCase) Update(_ context.Context, in calendar.UpdateInput) (calendar.UpdateOutput, error) {
	f.updated = in
	return calendar.UpdateOutput{Calendar: model.Calendar{ID: in.ID, Name: in.Name}}, f.err
}

func (f *fakeUseCase) Delete(context.Context, int64) error { return f.err }

func newTestRouter(uc calendar.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/calendars"), New(log.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandlers_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "create", method: http.MethodPost, path: "/calendars", body: `{"name":"Work","color":"#123456"}`, wantStatus: http.StatusCreated},
		{name: "create missing name", method: http.MethodPost, path: "/calendars", body: `{"color":"#123456"}`, wantStatus: http.StatusBadRequest},
		{name: "create duplicate", ucErr: calendar.ErrDuplicateName, method: http.MethodPost, path: "/calendars", body: `{"name":"Work"}`, wantStatus: http.StatusConflict},
		{name: "list", method: http.MethodGet, path: "/calendars", wantStatus: http.StatusOK},
		{name: "list failure", ucErr: errors.New("boom"), method: http.MethodGet, path: "/calendars", wantStatus: http.StatusInternalServerError},
		{name: "detail", method: http.MethodGet, path: "/calendars/3", wantStatus: http.StatusOK},
		{name: "detail bad id", method: http.MethodGet, path: "/calendars/abc", wantStatus: http.StatusBadRequest},
		{name: "detail missing", ucErr: calendar.ErrCalendarNotFound, method: http.MethodGet, path: "/calendars/3", wantStatus: http.StatusNotFound},
		{name: "update", method: http.MethodPut, path: "/calendars/3", body: `{"name":"New"}`, wantStatus: http.StatusOK},
		{name: "delete", method: http.MethodDelete, path: "/calendars/3", wantStatus: http.StatusNoContent},
		{name: "delete missing", ucErr: calendar.ErrCalendarNotFound, method: http.MethodDelete, path: "/calendars/3", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestRouter(&fakeUseCase{err: tt.ucErr}), tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCreate_ResponseBody(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodPost, "/calendars", `{"name":"Work","color":"#123456"}`)

	var body struct {
		ErrorCode int          `json:"error_code"`
		Data      calendarResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.ID != 7 || body.Data.Name != "Work" || body.Data.Color == nil || *body.Data.Color != "#123456" {
		t.Errorf("unexpected data: %+v", body.Data)
	}
	if uc.created.Name != "Work" {
		t.Errorf("use case got %+v", uc.created)
	}
}

func TestUpdate_UsesPathID(t *testing.T) {
	uc := &fakeUseCase{}
	do(newTestRouter(uc), http.MethodPut, "/calendars/12", `{"name":"New"}`)

	if uc.updated.ID != 12 || uc.updated.Name != "New" {
		t.Errorf("use case got %+v", uc.updated)
	}
}
