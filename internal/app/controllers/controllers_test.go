package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/app/controllers"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/bootstrap"
	"github.com/yigit/placementportal/internal/db"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
	"github.com/yigit/placementportal/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	engine *gin.Engine
	deps   *bootstrap.Dependencies
}

func newTestApp(t *testing.T, database db.Database, blobs filestorage.BlobStore) *testApp {
	t.Helper()
	if database == nil {
		database = db.NewMemoryDB()
	}
	if blobs == nil {
		blobs = filestorage.NewMemoryStorage()
	}
	deps := bootstrap.BuildDependencies(database, blobs, zerolog.Nop())
	return &testApp{engine: bootstrap.NewEngine(deps, 8), deps: deps}
}

func (a *testApp) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) doJSON(t *testing.T, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	return a.do(t, method, path, body, "application/json")
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// errorMessage returns the top-level message of an error response
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, rec, &resp)
	if resp.Success {
		t.Fatalf("error response should carry success=false: %s", rec.Body.String())
	}
	return resp.Message
}

type createdStudent struct {
	Message string                 `json:"message"`
	Student map[string]interface{} `json:"student"`
}

func (a *testApp) postStudent(t *testing.T, fields map[string]string, files ...testutil.FilePart) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := testutil.MultipartBody(t, fields, files...)
	return a.do(t, http.MethodPost, "/students", body, contentType)
}

func mustCreateStudent(t *testing.T, a *testApp, fields map[string]string, files ...testutil.FilePart) map[string]interface{} {
	t.Helper()
	rec := a.postStudent(t, fields, files...)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /students = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp createdStudent
	decode(t, rec, &resp)
	return resp.Student
}

func TestCreateStudent_WithoutFilesHasNullRefs(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.postStudent(t, map[string]string{"name": "B. Kumar", "registrationNo": "21IT456", "cgpa": "8.1", "semester": "5"})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /students = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp createdStudent
	decode(t, rec, &resp)
	if resp.Message != "Student added successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	for _, key := range []string{"resumeFileId", "photoFileId"} {
		v, present := resp.Student[key]
		if !present || v != nil {
			t.Errorf("%s = %v (present %v), want explicit null", key, v, present)
		}
	}
	if resp.Student["cgpa"] != 8.1 || resp.Student["semester"] != float64(5) {
		t.Errorf("numeric form fields not bound: %v", resp.Student)
	}
	if _, present := resp.Student["email"]; present {
		t.Error("unset fields should be omitted")
	}

	rec = app.do(t, http.MethodGet, "/students", nil, "")
	var all []map[string]interface{}
	decode(t, rec, &all)
	if len(all) != 1 || all[0]["name"] != "B. Kumar" {
		t.Errorf("GET /students = %v", all)
	}
}

func TestGetAllStudents_EmptyIsArray(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodGet, "/students", nil, "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("GET /students = %d %s, want 200 []", rec.Code, rec.Body.String())
	}
}

func TestResumeRoundTrip(t *testing.T) {
	app := newTestApp(t, nil, nil)
	pdf := []byte("%PDF-1.4 fake resume")

	student := mustCreateStudent(t, app,
		map[string]string{"name": "C. Rao", "registrationNo": "21 EC  789"},
		testutil.FilePart{Field: "resume", FileName: "cv.pdf", ContentType: "application/pdf", Content: pdf},
	)
	if student["resumeFileId"] == nil {
		t.Fatal("resumeFileId should be set after upload")
	}

	rec := app.do(t, http.MethodGet, "/students/"+student["_id"].(string)+"/resume", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET resume = %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.Equal(rec.Body.Bytes(), pdf) {
		t.Errorf("resume body = %q, want %q", rec.Body.Bytes(), pdf)
	}
	if got := rec.Header().Get("Content-Type"); got != services.ResumeContentType {
		t.Errorf("Content-Type = %q", got)
	}
	if got, want := rec.Header().Get("Content-Disposition"), `attachment; filename="21_EC_789_Resume.pdf"`; got != want {
		t.Errorf("Content-Disposition = %q, want %q", got, want)
	}
}

func TestGetResume_NotFound(t *testing.T) {
	app := newTestApp(t, nil, nil)
	student := mustCreateStudent(t, app, map[string]string{"name": "D. Patel"})

	tests := []struct {
		name string
		path string
		code int
		msg  string
	}{
		{"no resume uploaded", "/students/" + student["_id"].(string) + "/resume", http.StatusNotFound, "Resume not found"},
		{"unknown student", "/students/" + primitive.NewObjectID().Hex() + "/resume", http.StatusNotFound, "Resume not found"},
		{"malformed id", "/students/not-an-id/resume", http.StatusBadRequest, "Invalid student ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodGet, tt.path, nil, "")
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d", rec.Code, tt.code)
			}
			if msg := errorMessage(t, rec); msg != tt.msg {
				t.Errorf("message = %q, want %q", msg, tt.msg)
			}
		})
	}
}

func TestGetPhoto(t *testing.T) {
	store := filestorage.NewMemoryStorage()
	app := newTestApp(t, nil, store)
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 'J', 'F', 'I', 'F'}

	withPhoto := mustCreateStudent(t, app, map[string]string{"name": "E. Reddy"},
		testutil.FilePart{Field: "photo", FileName: "me.jpg", ContentType: "image/jpeg", Content: jpeg})
	withoutPhoto := mustCreateStudent(t, app, map[string]string{"name": "F. Thomas"})
	dangling := mustCreateStudent(t, app, map[string]string{"name": "G. Roy"},
		testutil.FilePart{Field: "photo", FileName: "gone.jpg", ContentType: "image/jpeg", Content: jpeg})

	ref, err := primitive.ObjectIDFromHex(dangling["photoFileId"].(string))
	if err != nil {
		t.Fatalf("photoFileId: %v", err)
	}
	if err := store.Delete(context.Background(), ref); err != nil {
		t.Fatalf("delete photo blob: %v", err)
	}

	t.Run("streams stored photo", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/students/"+withPhoto["_id"].(string)+"/photo", nil, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		if !bytes.Equal(rec.Body.Bytes(), jpeg) {
			t.Errorf("photo body = %v", rec.Body.Bytes())
		}
		if got := rec.Header().Get("Content-Type"); got != services.PhotoContentType {
			t.Errorf("Content-Type = %q", got)
		}
	})

	t.Run("no photo uploaded", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/students/"+withoutPhoto["_id"].(string)+"/photo", nil, "")
		if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "Photo not found" {
			t.Errorf("got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("blob missing from store", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/students/"+dangling["_id"].(string)+"/photo", nil, "")
		if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "File not found" {
			t.Errorf("got %d %s", rec.Code, rec.Body.String())
		}
	})
}

// brokenReadStore stores blobs normally but hands back readers that fail immediately
type brokenReadStore struct {
	*filestorage.MemoryStorage
}

func (s brokenReadStore) Open(ctx context.Context, ref filestorage.FileRef) (io.ReadCloser, error) {
	return io.NopCloser(iotest.ErrReader(errors.New("stream reset"))), nil
}

func TestGetPhoto_StreamErrorBeforeFirstByte(t *testing.T) {
	app := newTestApp(t, nil, brokenReadStore{filestorage.NewMemoryStorage()})
	student := mustCreateStudent(t, app, map[string]string{"name": "H. Iyer"},
		testutil.FilePart{Field: "photo", FileName: "me.jpg", ContentType: "image/jpeg", Content: []byte{0xFF, 0xD8}})

	rec := app.do(t, http.MethodGet, "/students/"+student["_id"].(string)+"/photo", nil, "")
	if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "File not found" {
		t.Errorf("got %d %s, want 404 File not found", rec.Code, rec.Body.String())
	}
}

func TestCreateStudent_StorageFailure(t *testing.T) {
	app := newTestApp(t, nil, testutil.FailingBlobStore{})

	rec := app.postStudent(t, map[string]string{"name": "A. Sharma"},
		testutil.FilePart{Field: "resume", FileName: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF")})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, rec, &resp)
	if resp.Error.Code != "SRV_001" {
		t.Errorf("error code = %q, want SRV_001", resp.Error.Code)
	}

	rec = app.do(t, http.MethodGet, "/students", nil, "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("no student should be stored, got %s", rec.Body.String())
	}
}

func TestStudentByRegistrationNo_GetAndUpdate(t *testing.T) {
	app := newTestApp(t, nil, nil)
	mustCreateStudent(t, app, map[string]string{"name": "A. Sharma", "registrationNo": "21CS123", "course": "CSE"})

	rec := app.doJSON(t, http.MethodPut, "/student/21CS123", map[string]interface{}{"course": "B.Tech CSE", "cgpa": 9.1})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT = %d: %s", rec.Code, rec.Body.String())
	}
	var ok struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, rec, &ok)
	if !ok.Success || ok.Message != "Student profile updated" {
		t.Errorf("PUT response = %+v", ok)
	}

	rec = app.do(t, http.MethodGet, "/student/21CS123", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d: %s", rec.Code, rec.Body.String())
	}
	var student models.Student
	decode(t, rec, &student)
	if student.Course == nil || *student.Course != "B.Tech CSE" || student.CGPA == nil || *student.CGPA != 9.1 {
		t.Errorf("profile not updated: %+v", student.StudentProfile)
	}
	if student.Name == nil || *student.Name != "A. Sharma" {
		t.Error("fields absent from the update should be kept")
	}

	for _, method := range []string{http.MethodGet, http.MethodPut} {
		rec = app.doJSON(t, method, "/student/NOPE", map[string]string{"course": "x"})
		if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "Student not found" {
			t.Errorf("%s unknown regNo = %d %s", method, rec.Code, rec.Body.String())
		}
	}
}

func TestDeleteStudent_ResumeBlobAlreadyGone(t *testing.T) {
	store := filestorage.NewMemoryStorage()
	app := newTestApp(t, nil, store)

	student := mustCreateStudent(t, app, map[string]string{"name": "B. Kumar", "registrationNo": "21IT456"},
		testutil.FilePart{Field: "resume", FileName: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF")})
	ref, err := primitive.ObjectIDFromHex(student["resumeFileId"].(string))
	if err != nil {
		t.Fatalf("resumeFileId: %v", err)
	}
	if err := store.Delete(context.Background(), ref); err != nil {
		t.Fatalf("delete resume blob: %v", err)
	}

	rec := app.do(t, http.MethodDelete, "/students/"+student["_id"].(string), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = app.do(t, http.MethodGet, "/student/21IT456", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("student should be gone, GET = %d", rec.Code)
	}

	rec = app.do(t, http.MethodDelete, "/students/"+student["_id"].(string), nil, "")
	if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "Student not found" {
		t.Errorf("second DELETE = %d %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteStudent_RemovesResumeOnly(t *testing.T) {
	store := filestorage.NewMemoryStorage()
	app := newTestApp(t, nil, store)

	student := mustCreateStudent(t, app, map[string]string{"name": "C. Rao"},
		testutil.FilePart{Field: "resume", FileName: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
		testutil.FilePart{Field: "photo", FileName: "me.jpg", ContentType: "image/jpeg", Content: []byte{0xFF, 0xD8}})
	if store.Len() != 2 {
		t.Fatalf("store holds %d blobs, want 2", store.Len())
	}

	rec := app.do(t, http.MethodDelete, "/students/"+student["_id"].(string), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE = %d: %s", rec.Code, rec.Body.String())
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d blobs after delete, want the photo only", store.Len())
	}
}

func TestSessions_SortedEvents(t *testing.T) {
	app := newTestApp(t, nil, nil)

	for _, s := range []map[string]string{
		{"company": "Globex", "start": "2025-03-20T09:00"},
		{"company": "Acme Corp", "start": "2025-03-14T10:00:00Z"},
		{"company": "Initech", "start": "2025-03-17T14:30"},
	} {
		rec := app.doJSON(t, http.MethodPost, "/sessions", s)
		if rec.Code != http.StatusOK {
			t.Fatalf("POST /sessions %v = %d: %s", s, rec.Code, rec.Body.String())
		}
	}

	rec := app.do(t, http.MethodGet, "/sessions", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /sessions = %d", rec.Code)
	}
	var events []struct {
		ID    string    `json:"id"`
		Title string    `json:"title"`
		Start time.Time `json:"start"`
	}
	decode(t, rec, &events)

	want := []string{"Acme Corp", "Initech", "Globex"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.Title != want[i] {
			t.Errorf("events[%d].title = %q, want %q", i, e.Title, want[i])
		}
		if e.ID == "" {
			t.Errorf("events[%d] has no id", i)
		}
	}
	if !events[0].Start.Equal(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("events[0].start = %v", events[0].Start)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	app := newTestApp(t, nil, nil)

	tests := []struct {
		name    string
		payload interface{}
		msg     string
	}{
		{"missing start", map[string]string{"company": "Acme Corp"}, "Company and start time are required"},
		{"missing company", map[string]string{"start": "2025-03-14T10:00"}, "Company and start time are required"},
		{"empty body", nil, "Company and start time are required"},
		{"unparseable start", map[string]string{"company": "Acme Corp", "start": "next tuesday"}, "Start time must be a valid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.doJSON(t, http.MethodPost, "/sessions", tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if msg := errorMessage(t, rec); msg != tt.msg {
				t.Errorf("message = %q, want %q", msg, tt.msg)
			}
		})
	}

	rec := app.do(t, http.MethodGet, "/sessions", nil, "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("rejected sessions must not be stored, got %s", rec.Body.String())
	}
}

func TestCreateSession_EpochMillisStart(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.doJSON(t, http.MethodPost, "/sessions", map[string]interface{}{"company": "Acme Corp", "start": 1741946400000})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /sessions = %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Session models.Session `json:"session"`
	}
	decode(t, rec, &created)
	if !created.Session.Start.Equal(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2025-03-14T10:00:00Z", created.Session.Start)
	}

	path := "/sessions/" + created.Session.ID.Hex()
	rec = app.doJSON(t, http.MethodPut, path, map[string]interface{}{"start": 1742038200000})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Session
	decode(t, rec, &updated)
	if !updated.Start.Equal(time.Date(2025, 3, 15, 11, 30, 0, 0, time.UTC)) {
		t.Errorf("updated start = %v, want 2025-03-15T11:30:00Z", updated.Start)
	}

	rec = app.doJSON(t, http.MethodPost, "/sessions", map[string]interface{}{"company": "Acme Corp", "start": 1.5})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("fractional start status = %d, want 400", rec.Code)
	}
}

func TestSession_UpdateAndDelete(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.doJSON(t, http.MethodPost, "/sessions", map[string]string{"company": "Acme Corp", "start": "2025-03-14T10:00"})
	var created struct {
		Session models.Session `json:"session"`
	}
	decode(t, rec, &created)
	path := "/sessions/" + created.Session.ID.Hex()

	rec = app.doJSON(t, http.MethodPut, path, map[string]string{"start": "2025-03-15T11:30"})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Session
	decode(t, rec, &updated)
	if updated.Company != "Acme Corp" || !updated.Start.Equal(time.Date(2025, 3, 15, 11, 30, 0, 0, time.UTC)) {
		t.Errorf("updated session = %+v", updated)
	}

	rec = app.do(t, http.MethodDelete, path, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE = %d", rec.Code)
	}
	rec = app.do(t, http.MethodDelete, path, nil, "")
	if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "Session not found" {
		t.Errorf("second DELETE = %d %s", rec.Code, rec.Body.String())
	}

	rec = app.doJSON(t, http.MethodPut, "/sessions/xyz", map[string]string{"company": "x"})
	if rec.Code != http.StatusBadRequest || errorMessage(t, rec) != "Invalid session ID" {
		t.Errorf("malformed id = %d %s", rec.Code, rec.Body.String())
	}
}

func TestCompanyScenario(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.doJSON(t, http.MethodPost, "/companies", map[string]interface{}{
		"companyName": "Acme Corp", "pocName": "R. Menon", "minCgpa": 7.5, "avgPackageLpa": 12.5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /companies = %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Message string         `json:"message"`
		Company models.Company `json:"company"`
	}
	decode(t, rec, &created)
	if created.Message != "Company added successfully" || created.Company.ID.IsZero() {
		t.Fatalf("created = %+v", created)
	}
	path := "/companies/" + created.Company.ID.Hex()

	rec = app.doJSON(t, http.MethodPut, path, map[string]interface{}{"minCgpa": 8.0})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT = %d: %s", rec.Code, rec.Body.String())
	}
	var updated models.Company
	decode(t, rec, &updated)
	if updated.MinCGPA == nil || *updated.MinCGPA != 8.0 {
		t.Errorf("minCgpa = %v, want 8", updated.MinCGPA)
	}
	if updated.CompanyName == nil || *updated.CompanyName != "Acme Corp" {
		t.Error("companyName should survive a partial update")
	}

	rec = app.do(t, http.MethodGet, "/companies", nil, "")
	var all []models.Company
	decode(t, rec, &all)
	if len(all) != 1 {
		t.Fatalf("GET /companies returned %d companies", len(all))
	}

	rec = app.do(t, http.MethodDelete, path, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE = %d", rec.Code)
	}
	rec = app.do(t, http.MethodGet, path, nil, "")
	if rec.Code != http.StatusNotFound || errorMessage(t, rec) != "Company not found" {
		t.Errorf("GET after delete = %d %s", rec.Code, rec.Body.String())
	}

	rec = app.do(t, http.MethodGet, "/companies/123", nil, "")
	if rec.Code != http.StatusBadRequest || errorMessage(t, rec) != "Invalid company ID" {
		t.Errorf("malformed id = %d %s", rec.Code, rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, nil, nil)
	ctx := context.Background()
	logins := app.deps.Repos.LoginRepository

	if err := logins.CreateFaculty(ctx, &models.FacultyLogin{Uname: "faculty", Password: "faculty123"}); err != nil {
		t.Fatalf("CreateFaculty: %v", err)
	}
	if err := logins.CreateStudent(ctx, &models.StudentLogin{Uname: "asharma", Password: "student123", RegistrationNo: "21CS123"}); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if err := logins.CreateCompany(ctx, &models.CompanyLogin{Uname: "acme", Password: "company123"}); err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}
	// Same username in a later table: the faculty row wins
	if err := logins.CreateCompany(ctx, &models.CompanyLogin{Uname: "faculty", Password: "other"}); err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	tests := []struct {
		name     string
		uname    string
		password string
		code     int
		userType string
		regNo    string
		msg      string
	}{
		{"faculty", "faculty", "faculty123", http.StatusOK, "faculty", "", ""},
		{"student carries registration number", "asharma", "student123", http.StatusOK, "student", "21CS123", ""},
		{"company", "acme", "company123", http.StatusOK, "company", "", ""},
		{"first table shadows later ones", "faculty", "other", http.StatusBadRequest, "", "", "Wrong password"},
		{"wrong password", "asharma", "nope", http.StatusBadRequest, "", "", "Wrong password"},
		{"unknown user", "ghost", "x", http.StatusBadRequest, "", "", "Invalid username"},
		{"empty username", "", "x", http.StatusBadRequest, "", "", "Invalid username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.doJSON(t, http.MethodPost, "/login", map[string]string{"uname": tt.uname, "password": tt.password})
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.code, rec.Body.String())
			}
			if tt.code != http.StatusOK {
				if msg := errorMessage(t, rec); msg != tt.msg {
					t.Errorf("message = %q, want %q", msg, tt.msg)
				}
				return
			}

			var resp map[string]interface{}
			decode(t, rec, &resp)
			if resp["success"] != true || resp["userType"] != tt.userType {
				t.Errorf("response = %v", resp)
			}
			got, present := resp["registrationNo"]
			if tt.regNo == "" && present {
				t.Errorf("registrationNo should be omitted, got %v", got)
			}
			if tt.regNo != "" && got != tt.regNo {
				t.Errorf("registrationNo = %v, want %s", got, tt.regNo)
			}
		})
	}
}

func TestNotifications_LatestTwenty(t *testing.T) {
	app := newTestApp(t, nil, nil)

	// A ticking clock keeps timestamps distinct at the store's millisecond precision
	clock := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	tick := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	app.deps.NotificationController = controllers.NewNotificationController(
		services.NewNotificationService(app.deps.Repos.NotificationRepository, tick))
	app.engine = bootstrap.NewEngine(app.deps, 8)

	for i := 1; i <= 25; i++ {
		rec := app.doJSON(t, http.MethodPost, "/notifications", map[string]string{"message": fmt.Sprintf("drive %d", i)})
		if rec.Code != http.StatusOK {
			t.Fatalf("POST #%d = %d: %s", i, rec.Code, rec.Body.String())
		}
		if i == 1 {
			var saved struct {
				Success bool   `json:"success"`
				Msg     string `json:"msg"`
			}
			decode(t, rec, &saved)
			if !saved.Success || saved.Msg != "Notification saved" {
				t.Errorf("POST response = %+v", saved)
			}
		}
	}

	rec := app.do(t, http.MethodGet, "/notifications", nil, "")
	var got []models.Notification
	decode(t, rec, &got)
	if len(got) != services.LatestNotificationsLimit {
		t.Fatalf("got %d notifications, want %d", len(got), services.LatestNotificationsLimit)
	}
	if got[0].Message != "drive 25" || got[len(got)-1].Message != "drive 6" {
		t.Errorf("window = %q .. %q, want drive 25 .. drive 6", got[0].Message, got[len(got)-1].Message)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Time.After(got[i].Time) {
			t.Errorf("notifications not newest first at %d", i)
		}
	}
}

func TestNotifications_LatestTwentyWithinSameMillisecond(t *testing.T) {
	app := newTestApp(t, nil, nil)

	// Default wall clock: back-to-back posts share a stored millisecond
	for i := 1; i <= 25; i++ {
		rec := app.doJSON(t, http.MethodPost, "/notifications", map[string]string{"message": fmt.Sprintf("drive %d", i)})
		if rec.Code != http.StatusOK {
			t.Fatalf("POST #%d = %d: %s", i, rec.Code, rec.Body.String())
		}
	}

	rec := app.do(t, http.MethodGet, "/notifications", nil, "")
	var got []models.Notification
	decode(t, rec, &got)
	if len(got) != services.LatestNotificationsLimit {
		t.Fatalf("got %d notifications, want %d", len(got), services.LatestNotificationsLimit)
	}
	for i, n := range got {
		if want := fmt.Sprintf("drive %d", 25-i); n.Message != want {
			t.Errorf("got[%d] = %q, want %q", i, n.Message, want)
		}
	}
}

func TestCreateNotification_MissingMessage(t *testing.T) {
	app := newTestApp(t, nil, nil)

	for _, payload := range []interface{}{map[string]string{}, map[string]string{"message": "   "}} {
		rec := app.doJSON(t, http.MethodPost, "/notifications", payload)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("POST %v = %d, want 400", payload, rec.Code)
		}
	}
}

// downDB fails pings and otherwise behaves like the wrapped database
type downDB struct {
	db.Database
}

func (downDB) Ping(ctx context.Context) error { return errors.New("connection refused") }

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		database db.Database
		code     int
		status   string
	}{
		{"up", db.NewMemoryDB(), http.StatusOK, "ok"},
		{"down", downDB{db.NewMemoryDB()}, http.StatusServiceUnavailable, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.database, nil)
			rec := app.do(t, http.MethodGet, "/health", nil, "")
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d", rec.Code, tt.code)
			}
			var resp map[string]string
			decode(t, rec, &resp)
			if resp["status"] != tt.status {
				t.Errorf("status field = %q, want %q", resp["status"], tt.status)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rec := app.do(t, http.MethodGet, "/health", nil, "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("responses should carry a request id")
	}
}
