package admin

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/storage"
	adminsqlite "github.com/doubtsclear/console/internal/services/admin/storage/sqlite"
)

const (
	testSessionID = "sess-1"
	testToken     = "tok"
	testUserID    = "64b7f0c2a1d3e4f5a6b7c8d1"
	testExpertID  = "64b7f0c2a1d3e4f5a6b7c8d9"
	testRecordID  = "64b7f0c2a1d3e4f5a6b7c8e1"
	testOrigin    = "http://example.com"
)

type apiWrite struct {
	method string
	path   string
	body   string
}

// fakeAPI answers canned bodies by "METHOD /path" and records every
// non-GET request it receives.
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	writes    []apiWrite
	tokens    []string
}

type fakeResponse struct {
	status int
	body   string
}

func (f *fakeAPI) respond(method string, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = fakeResponse{status: status, body: body}
}

func (f *fakeAPI) recordedWrites() []apiWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiWrite(nil), f.writes...)
}

func (f *fakeAPI) authorizations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	f.mu.Lock()
	f.tokens = append(f.tokens, r.Header.Get("Authorization"))
	if r.Method != http.MethodGet {
		f.writes = append(f.writes, apiWrite{method: r.Method, path: path, body: string(payload)})
	}
	resp, ok := f.responses[r.Method+" "+path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"not found"}`)
			return
		}
		_, _ = io.WriteString(w, `{"success":true}`)
		return
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

type testEnv struct {
	api     *fakeAPI
	store   *adminsqlite.Store
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api := &fakeAPI{responses: map[string]fakeResponse{}}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	store, err := adminsqlite.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client, err := consultapi.New(consultapi.Config{
		BaseURL: server.URL + "/api",
		Timeout: 5 * time.Second,
		Tokens:  SessionTokenSource(store),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return &testEnv{
		api:     api,
		store:   store,
		handler: NewHandler(HandlerConfig{Client: client, Sessions: store}),
	}
}

func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	now := time.Now().UTC()
	err := e.store.PutSession(context.Background(), storage.Session{
		ID:         testSessionID,
		Token:      testToken,
		AdminID:    "admin-1",
		AdminName:  "Asha",
		AdminEmail: "asha@example.com",
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("put session: %v", err)
	}
}

func (e *testEnv) get(target string, signedIn bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if signedIn {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(target string, form url.Values, signedIn bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", testOrigin)
	if signedIn {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

const usersBody = `{"users":[
	{"_id":"64b7f0c2a1d3e4f5a6b7c8d1","name":"Alice Sharma","email":"alice@example.com","role":"user"},
	{"_id":"64b7f0c2a1d3e4f5a6b7c8d2","name":"Bob Verma","email":"bob@example.com","role":"user"}
]}`

func TestUnauthenticatedRequestsRedirectToLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.get("/users", false)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("location = %q, want /login", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/users/table", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("htmx status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/login" {
		t.Fatalf("HX-Redirect = %q, want /login", got)
	}
}

func TestLoginPageIsPublic(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.get("/login", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `name="password"`) {
		t.Fatalf("login form missing password field")
	}
}

func TestStaticAssetsArePublic(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.get("/static/admin.css", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Cache-Control"); got != staticCacheControl {
		t.Fatalf("cache-control = %q, want %q", got, staticCacheControl)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantCookie bool
		wantText   string
	}{
		{
			name:       "admin",
			status:     http.StatusOK,
			body:       `{"user":{"_id":"a1","name":"Asha","email":"asha@example.com","role":"admin"},"token":"tok"}`,
			wantStatus: http.StatusSeeOther,
			wantCookie: true,
		},
		{
			name:       "non admin",
			status:     http.StatusOK,
			body:       `{"user":{"_id":"u1","name":"Ravi","email":"ravi@example.com","role":"user"},"token":"tok"}`,
			wantStatus: http.StatusForbidden,
			wantText:   "Unauthorized access",
		},
		{
			name:       "bad credentials",
			status:     http.StatusUnauthorized,
			body:       `{"message":"Invalid credentials"}`,
			wantStatus: http.StatusUnauthorized,
			wantText:   "Invalid credentials",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.api.respond(http.MethodPost, "/admin/login", tc.status, tc.body)

			rec := env.post("/login", url.Values{"email": {"asha@example.com"}, "password": {"secret"}}, false)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			hasCookie := false
			for _, cookie := range rec.Result().Cookies() {
				if cookie.Name == sessionCookieName && cookie.Value != "" {
					hasCookie = true
				}
			}
			if hasCookie != tc.wantCookie {
				t.Fatalf("session cookie set = %v, want %v", hasCookie, tc.wantCookie)
			}
			if tc.wantCookie && rec.Header().Get("Location") != "/" {
				t.Fatalf("location = %q, want /", rec.Header().Get("Location"))
			}
			if tc.wantText != "" && !strings.Contains(rec.Body.String(), tc.wantText) {
				t.Fatalf("body missing %q", tc.wantText)
			}
		})
	}
}

func TestLoginValidationSkipsAPI(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.post("/login", url.Values{"email": {""}, "password": {""}}, false)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("api writes = %v, want none", writes)
	}
}

func TestUsersSearchFiltersRows(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getAllUsers", http.StatusOK, usersBody)

	rec := env.get("/users?q=alice", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Alice Sharma") {
		t.Fatalf("body missing matching user")
	}
	if strings.Contains(body, "Bob Verma") {
		t.Fatalf("body contains filtered-out user")
	}
	for _, token := range env.api.authorizations() {
		if token != "Bearer "+testToken {
			t.Fatalf("authorization = %q, want bearer token", token)
		}
	}
}

func TestUserDeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getAllUsers", http.StatusOK, usersBody)

	rec := env.post("/users/"+testUserID+"/delete", url.Values{}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("unconfirmed writes = %v, want none", writes)
	}

	rec = env.post("/users/"+testUserID+"/delete", url.Values{"confirm": {"yes"}}, true)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("confirmed status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/users" {
		t.Fatalf("location = %q, want /users", got)
	}
	writes := env.api.recordedWrites()
	if len(writes) != 1 || writes[0].method != http.MethodDelete || writes[0].path != "/admin/users/"+testUserID {
		t.Fatalf("writes = %v, want one DELETE of the user", writes)
	}
}

func TestUserDeleteRejectsUnknownIDFormat(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)

	rec := env.post("/users/not-an-id/delete", url.Values{"confirm": {"yes"}}, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCrossOriginPostIsRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)

	req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/delete", strings.NewReader("confirm=yes"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://evil.example")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("writes = %v, want none", writes)
	}
}

func TestUserUpdateResubmissionIsIdempotent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getAllUsers", http.StatusOK, usersBody)

	form := url.Values{
		"name":  {"Alice Sharma"},
		"email": {"alice@example.com"},
		"role":  {"user"},
	}
	for i := 0; i < 2; i++ {
		rec := env.post("/users/"+testUserID, form, true)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("attempt %d status = %d, want %d", i, rec.Code, http.StatusSeeOther)
		}
	}
	writes := env.api.recordedWrites()
	if len(writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(writes))
	}
	if writes[0] != writes[1] || writes[0].method != http.MethodPut {
		t.Fatalf("writes differ: %v", writes)
	}
}

func TestUserUpdateValidationSkipsWrite(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getAllUsers", http.StatusOK, usersBody)

	rec := env.post("/users/"+testUserID, url.Values{"name": {"Alice"}, "email": {"not-an-email"}, "role": {"user"}}, true)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("writes = %v, want none", writes)
	}
}

func TestUserUpdateUpstreamFailureShowsMessage(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getAllUsers", http.StatusOK, usersBody)
	env.api.respond(http.MethodPut, "/admin/users/"+testUserID, http.StatusBadRequest, `{"message":"Email already in use"}`)

	rec := env.post("/users/"+testUserID, url.Values{"name": {"Alice"}, "email": {"alice@example.com"}, "role": {"user"}}, true)
	if rec.Code != upstreamFailureStatus {
		t.Fatalf("status = %d, want %d", rec.Code, upstreamFailureStatus)
	}
	if !strings.Contains(rec.Body.String(), "Email already in use") {
		t.Fatalf("body missing api message")
	}
}

func TestWalletCreateRejectsNegativeMoney(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/wallet/", http.StatusOK, `[]`)

	rec := env.post("/wallets/create", url.Values{"money": {"-5"}, "offer": {"10"}}, true)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rec.Body.String(), "Must be a positive amount") {
		t.Fatalf("body missing amount error")
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("writes = %v, want none", writes)
	}
}

func TestWalletCreatePostsPlan(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)

	rec := env.post("/wallets/create", url.Values{"money": {"500"}, "offer": {"10"}}, true)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	writes := env.api.recordedWrites()
	if len(writes) != 1 || writes[0].method != http.MethodPost || writes[0].path != "/wallet/" {
		t.Fatalf("writes = %v, want one POST /wallet/", writes)
	}
}

func TestExpertiseDuplicateCategoryKeepsDraft(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/expertise", http.StatusOK, `{"success":true,"data":[]}`)

	form := url.Values{
		"name":           {"Maths"},
		"category":       {"Algebra"},
		"category_input": {"Algebra"},
		"action":         {"add_category"},
	}
	rec := env.post("/expertise/create", form, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Category already added") {
		t.Fatalf("body missing duplicate notice")
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("writes = %v, want none", writes)
	}
}

func TestPayoutsExportCSV(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/withdraw/payouts", http.StatusOK, `{"data":[
		{"_id":"p1","expertId":{"_id":"e1","name":"Ravi"},"amount":1500,"method":"UPI","upiId":"ravi@upi"},
		{"_id":"p2","expertId":{"_id":"e2","name":"Meera"},"amount":200,"method":"UPI","transactionId":"T2"}
	]}`)

	rec := env.get("/payouts/export.csv?q=ravi", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "payouts.csv") {
		t.Fatalf("content-disposition = %q", got)
	}
	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	want := [][]string{
		payoutsExportHeader,
		{"p1", "Ravi", "e1", "1500", "UPI", "N/A", "N/A"},
	}
	if len(records) != len(want) {
		t.Fatalf("records = %v, want %v", records, want)
	}
	for i := range want {
		if strings.Join(records[i], ",") != strings.Join(want[i], ",") {
			t.Fatalf("record %d = %v, want %v", i, records[i], want[i])
		}
	}
}

func TestExpertVerification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verified   string
		target     string
		wantToggle bool
	}{
		{name: "verify pending", verified: "", target: "verified", wantToggle: true},
		{name: "reject pending", verified: "", target: "rejected", wantToggle: false},
		{name: "reject verified", verified: "verified", target: "rejected", wantToggle: true},
		{name: "verify verified", verified: "verified", target: "verified", wantToggle: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.signIn(t)
			env.api.respond(http.MethodGet, "/admin/getExpertById/"+testExpertID, http.StatusOK,
				`{"expert":{"_id":"`+testExpertID+`","name":"Meera","verified":"`+tc.verified+`"}}`)

			rec := env.post("/experts/"+testExpertID+"/verification", url.Values{"status": {tc.target}}, true)
			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
			}
			wantLocation := "/experts/" + testExpertID + "/review?flash=" + tc.target
			if got := rec.Header().Get("Location"); got != wantLocation {
				t.Fatalf("location = %q, want %q", got, wantLocation)
			}
			toggled := false
			for _, write := range env.api.recordedWrites() {
				if write.method == http.MethodPatch && write.path == "/admin/toggleVerification/"+testExpertID {
					toggled = true
				}
			}
			if toggled != tc.wantToggle {
				t.Fatalf("toggled = %v, want %v", toggled, tc.wantToggle)
			}
		})
	}
}

func TestExpertVerificationFailureFlash(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getExpertById/"+testExpertID, http.StatusOK,
		`{"expert":{"_id":"`+testExpertID+`","verified":""}}`)
	env.api.respond(http.MethodPatch, "/admin/toggleVerification/"+testExpertID, http.StatusInternalServerError, `{"message":"boom"}`)

	rec := env.post("/experts/"+testExpertID+"/verification", url.Values{"status": {"verified"}}, true)
	wantLocation := "/experts/" + testExpertID + "/review?flash=failed"
	if got := rec.Header().Get("Location"); got != wantLocation {
		t.Fatalf("location = %q, want %q", got, wantLocation)
	}
}

func TestAPIUnauthorizedEndsSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/getAllUsers", http.StatusUnauthorized, `{"message":"jwt expired"}`)

	rec := env.get("/users", true)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("location = %q, want /login", got)
	}
	_, err := env.store.GetSession(context.Background(), testSessionID, time.Now().UTC())
	if err != storage.ErrNotFound {
		t.Fatalf("session lookup err = %v, want ErrNotFound", err)
	}
}

func TestWithdrawalsStatusFilterIsSentUpstream(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)

	var gotStatus string
	var mu sync.Mutex
	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotStatus = r.URL.Query().Get("status")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"withdrawals":[]}`)
	})
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	client, err := consultapi.New(consultapi.Config{BaseURL: server.URL + "/api", Tokens: SessionTokenSource(env.store)})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	handler := NewHandler(HandlerConfig{Client: client, Sessions: env.store})

	req := httptest.NewRequest(http.MethodGet, "/withdrawals?status=pending", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	mu.Lock()
	defer mu.Unlock()
	if gotStatus != "pending" {
		t.Fatalf("upstream status = %q, want pending", gotStatus)
	}
}

// decodeWrite unmarshals the JSON body of a recorded API write.
func decodeWrite(t *testing.T, write apiWrite) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal([]byte(write.body), &body); err != nil {
		t.Fatalf("decode %s %s body %q: %v", write.method, write.path, write.body, err)
	}
	return body
}

func withdrawalsBody(status string) string {
	return `{"withdrawals":[{"_id":"` + testRecordID + `","expertId":{"_id":"e1","name":"Ravi"},"amount":1500,"method":"UPI","status":"` + status + `"}]}`
}

func TestWithdrawalApprovePostsTransactionID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/withdraw/all", http.StatusOK, withdrawalsBody("pending"))

	rec := env.post("/withdrawals/"+testRecordID+"/approve?status=pending&modal=approve&id="+testRecordID, url.Values{"transactionId": {" TX-9 "}}, true)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/withdrawals?status=pending" {
		t.Fatalf("location = %q, want /withdrawals?status=pending", got)
	}
	writes := env.api.recordedWrites()
	if len(writes) != 1 || writes[0].method != http.MethodPost || writes[0].path != "/admin/withdraw/approve/"+testRecordID {
		t.Fatalf("writes = %v, want one POST /admin/withdraw/approve/%s", writes, testRecordID)
	}
	if got := decodeWrite(t, writes[0]); len(got) != 1 || got["transactionId"] != "TX-9" {
		t.Fatalf("body = %v, want only transactionId TX-9", got)
	}
}

func TestWithdrawalApproveRequiresTransactionID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)
	env.api.respond(http.MethodGet, "/admin/withdraw/all", http.StatusOK, withdrawalsBody("pending"))

	rec := env.post("/withdrawals/"+testRecordID+"/approve", url.Values{"transactionId": {"  "}}, true)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rec.Body.String(), "Enter the transaction ID of the payment") {
		t.Fatalf("body missing transaction id error")
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("writes = %v, want none", writes)
	}
}

func TestWithdrawalApproveRefusesNonPending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "already approved", body: withdrawalsBody("approved")},
		{name: "unknown withdrawal", body: `{"withdrawals":[]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.signIn(t)
			env.api.respond(http.MethodGet, "/admin/withdraw/all", http.StatusOK, tc.body)

			rec := env.post("/withdrawals/"+testRecordID+"/approve", url.Values{"transactionId": {"TX-9"}}, true)
			if rec.Code != http.StatusConflict {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
			}
			body := rec.Body.String()
			if !strings.Contains(body, "This withdrawal is no longer pending") {
				t.Fatalf("body missing not-pending notice")
			}
			if strings.Contains(body, "<dialog") {
				t.Fatalf("approve modal rendered for a non-pending withdrawal")
			}
			if writes := env.api.recordedWrites(); len(writes) != 0 {
				t.Fatalf("writes = %v, want none", writes)
			}
		})
	}
}

func TestExpertBlockPatchesAndClosesModal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  bool
	}{
		{name: "block", block: "true", want: true},
		{name: "unblock", block: "false", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.signIn(t)

			target := "/experts/" + testExpertID + "/block?q=meera&modal=view&id=" + testExpertID
			rec := env.post(target, url.Values{"block": {tc.block}, "return": {"/experts/verified"}}, true)
			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
			}
			if got := rec.Header().Get("Location"); got != "/experts/verified?q=meera" {
				t.Fatalf("location = %q, want /experts/verified?q=meera", got)
			}
			writes := env.api.recordedWrites()
			if len(writes) != 1 || writes[0].method != http.MethodPatch || writes[0].path != "/admin/expert/block/"+testExpertID {
				t.Fatalf("writes = %v, want one PATCH /admin/expert/block/%s", writes, testExpertID)
			}
			if got := decodeWrite(t, writes[0]); len(got) != 1 || got["block"] != tc.want {
				t.Fatalf("body = %v, want block %v", got, tc.want)
			}
		})
	}
}

func TestExpertBlockRejectsInvalidFlag(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.signIn(t)

	rec := env.post("/experts/"+testExpertID+"/block", url.Values{"block": {"maybe"}}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if writes := env.api.recordedWrites(); len(writes) != 0 {
		t.Fatalf("writes = %v, want none", writes)
	}
}

const callsBody = `{"calls":[
	{"_id":"c1","caller":{"id":{"_id":"u1","name":"Endcaller"},"type":"user"},"receiver":{"id":{"_id":"e1","name":"Ravi"},"type":"expert"},"callType":"audio","status":"ended"},
	{"_id":"c2","caller":{"id":{"_id":"u2","name":"Misscaller"},"type":"user"},"receiver":{"id":{"_id":"e1","name":"Ravi"},"type":"expert"},"callType":"video","status":"missed"},
	{"_id":"c3","caller":{"id":{"_id":"u3","name":"Livecaller"},"type":"user"},"receiver":{"id":{"_id":"e1","name":"Ravi"},"type":"expert"},"callType":"audio","status":"ongoing"}
]}`

func TestCallsStatusFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   []string
	}{
		{status: "completed", want: []string{"Endcaller"}},
		{status: "missed", want: []string{"Misscaller"}},
		{status: "ongoing", want: []string{"Livecaller"}},
		{status: "all", want: []string{"Endcaller", "Misscaller", "Livecaller"}},
	}
	callers := []string{"Endcaller", "Misscaller", "Livecaller"}
	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.signIn(t)
			env.api.respond(http.MethodGet, "/admin/calls", http.StatusOK, callsBody)

			rec := env.get("/calls/table?status="+tc.status, true)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			body := rec.Body.String()
			for _, caller := range callers {
				want := false
				for _, name := range tc.want {
					want = want || name == caller
				}
				if got := strings.Contains(body, caller); got != want {
					t.Fatalf("%s listed = %v, want %v", caller, got, want)
				}
			}
		})
	}
}

func TestPayoutSubmitSendsOnlyChosenMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		method     string
		path       string
		payoutType string
		wantKey    string
		absentKey  string
	}{
		{name: "create upi", target: "/payouts/create", method: http.MethodPost, path: "/admin/withdraw/create-payout", payoutType: "UPI", wantKey: "upiId", absentKey: "bankDetails"},
		{name: "create bank", target: "/payouts/create", method: http.MethodPost, path: "/admin/withdraw/create-payout", payoutType: "Bank Transfer", wantKey: "bankDetails", absentKey: "upiId"},
		{name: "update upi", target: "/payouts/" + testRecordID, method: http.MethodPut, path: "/admin/payouts/" + testRecordID, payoutType: "UPI", wantKey: "upiId", absentKey: "bankDetails"},
		{name: "update bank", target: "/payouts/" + testRecordID, method: http.MethodPut, path: "/admin/payouts/" + testRecordID, payoutType: "Bank Transfer", wantKey: "bankDetails", absentKey: "upiId"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.signIn(t)

			form := url.Values{
				"expertId":                  {"e1"},
				"withdrawalId":              {"wd1"},
				"amount":                    {"250"},
				"method":                    {tc.payoutType},
				"transactionId":             {"TX-1"},
				"upiId":                     {"ravi@upi"},
				"bankDetails.accountNumber": {"1234567890"},
				"bankDetails.ifscCode":      {"SBIN0001234"},
				"bankDetails.holderName":    {"Ravi"},
			}
			rec := env.post(tc.target, form, true)
			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
			}
			writes := env.api.recordedWrites()
			if len(writes) != 1 || writes[0].method != tc.method || writes[0].path != tc.path {
				t.Fatalf("writes = %v, want one %s %s", writes, tc.method, tc.path)
			}
			body := decodeWrite(t, writes[0])
			if _, ok := body[tc.wantKey]; !ok {
				t.Fatalf("body = %v, missing %s", body, tc.wantKey)
			}
			if _, ok := body[tc.absentKey]; ok {
				t.Fatalf("body = %v, carries %s", body, tc.absentKey)
			}
			if body["method"] != tc.payoutType || body["amount"] != float64(250) {
				t.Fatalf("body = %v", body)
			}
		})
	}
}

func TestWalletEditCeiling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		money   string
		status  int
		message string
	}{
		{name: "edit at ceiling", target: "/wallets/" + testRecordID, money: "1000000", status: http.StatusSeeOther},
		{name: "edit above ceiling", target: "/wallets/" + testRecordID, money: "1000001", status: http.StatusUnprocessableEntity, message: "Amount too large"},
		{name: "edit negative", target: "/wallets/" + testRecordID, money: "-5", status: http.StatusUnprocessableEntity, message: "Must be a positive number"},
		{name: "create above edit ceiling", target: "/wallets/create", money: "1000001", status: http.StatusSeeOther},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.signIn(t)
			env.api.respond(http.MethodGet, "/wallet/", http.StatusOK, `[{"_id":"`+testRecordID+`","money":500,"offer":5}]`)

			rec := env.post(tc.target, url.Values{"money": {tc.money}, "offer": {"5"}}, true)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			writes := env.api.recordedWrites()
			if tc.status != http.StatusSeeOther {
				if len(writes) != 0 {
					t.Fatalf("writes = %v, want none", writes)
				}
				body := rec.Body.String()
				if !strings.Contains(body, tc.message) || strings.Contains(body, "1 crore") {
					t.Fatalf("body missing %q", tc.message)
				}
				return
			}
			if len(writes) != 1 {
				t.Fatalf("writes = %v, want one", writes)
			}
			want, _ := strconv.ParseFloat(tc.money, 64)
			if got := decodeWrite(t, writes[0]); got["money"] != want {
				t.Fatalf("body = %v, want money %v", got, want)
			}
		})
	}
}
