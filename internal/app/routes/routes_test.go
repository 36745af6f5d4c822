package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/careers"
	"github.com/yigit/mentorbridge/internal/app/controllers"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/repositories/repotest"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/middleware"
	"github.com/yigit/mentorbridge/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.BcryptCost = bcrypt.MinCost
	middleware.RegisterValidators()
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	svc    *services.Services
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	repos := repotest.NewRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentorbridge-test",
	})
	svc := services.NewServices(repos, jwtService, careers.Default(), zerolog.Nop())

	router := gin.New()
	SetupRouter(router, Controllers{
		Auth:       controllers.NewAuthController(svc.AuthService, zerolog.Nop()),
		User:       controllers.NewUserController(svc.UserService),
		Admin:      controllers.NewAdminController(svc.UserService),
		Match:      controllers.NewMatchController(svc.MatchService),
		Career:     controllers.NewCareerController(svc.CareerService),
		Mentorship: controllers.NewMentorshipController(svc.MentorshipService, zerolog.Nop()),
		Chat:       controllers.NewChatController(svc.ChatService),
	}, middleware.NewAuthMiddleware(jwtService))

	return &testAPI{t: t, router: router, svc: svc}
}

// call performs a request and decodes the envelope data into out when non-nil
func (a *testAPI) call(method, path, token string, body any, out any) (int, envelope) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		a.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			a.t.Fatalf("%s %s: decode data: %v", method, path, err)
		}
	}
	return w.Code, env
}

type authData struct {
	Token struct {
		AccessToken string `json:"accessToken"`
	} `json:"token"`
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

func (a *testAPI) register(email, name string, role models.RoleType) (token, id string) {
	a.t.Helper()
	var data authData
	code, env := a.call(http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email": email, "name": name, "password": "secret123", "roleType": role,
	}, &data)
	if code != http.StatusCreated {
		a.t.Fatalf("register %s: got %d %+v", email, code, env.Error)
	}
	return data.Token.AccessToken, data.User.ID
}

func (a *testAPI) expect(method, path, token string, body any, want int) envelope {
	a.t.Helper()
	code, env := a.call(method, path, token, body, nil)
	if code != want {
		a.t.Fatalf("%s %s: got %d want %d (%+v)", method, path, code, want, env.Error)
	}
	return env
}

func TestMentorshipFlow(t *testing.T) {
	api := newTestAPI(t)

	studentToken, studentID := api.register("ada@example.com", "Ada Lovelace", models.RoleStudent)
	mentorToken, mentorID := api.register("grace@example.com", "Grace Hopper", models.RoleMentor)

	api.expect(http.MethodPut, "/api/v1/users/me", studentToken, map[string]any{
		"skills": "Python, SQL, , python", "careerGoal": "Data Scientist",
	}, http.StatusOK)
	api.expect(http.MethodPut, "/api/v1/users/me", mentorToken, map[string]any{
		"skills": "Python, Machine Learning", "expertise": "ML", "experience": 10,
	}, http.StatusOK)

	var mentors []struct {
		MentorID string  `json:"mentorId"`
		Score    float64 `json:"score"`
	}
	if code, _ := api.call(http.MethodGet, "/api/v1/matches/mentors", studentToken, nil, &mentors); code != http.StatusOK {
		t.Fatalf("match mentors: got %d", code)
	}
	if len(mentors) != 1 || mentors[0].MentorID != mentorID || mentors[0].Score <= 0 {
		t.Fatalf("unexpected mentor ranking %+v", mentors)
	}

	var gap struct {
		Missing       []string `json:"missing"`
		CompletionPct int      `json:"completionPct"`
	}
	api.call(http.MethodGet, "/api/v1/careers/gap", studentToken, nil, &gap)
	if gap.CompletionPct != 40 || len(gap.Missing) != 3 {
		t.Errorf("gap: got %+v", gap)
	}

	// Chat is closed until a request is approved.
	api.expect(http.MethodPost, "/api/v1/chats/"+mentorID+"/messages", studentToken, map[string]any{"body": "hi"}, http.StatusForbidden)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if code, _ := api.call(http.MethodPost, "/api/v1/requests", studentToken, map[string]any{"mentorId": mentorID}, &created); code != http.StatusCreated {
		t.Fatalf("create request: got %d", code)
	}
	if created.Status != string(models.RequestStatusPending) {
		t.Errorf("status: got %s want Pending", created.Status)
	}
	api.expect(http.MethodPost, "/api/v1/requests", studentToken, map[string]any{"mentorId": mentorID}, http.StatusConflict)

	decision := "/api/v1/requests/" + created.ID + "/decision"
	api.expect(http.MethodPost, decision, studentToken, map[string]any{"decision": "approve"}, http.StatusForbidden)
	api.expect(http.MethodPost, decision, mentorToken, map[string]any{"decision": "maybe"}, http.StatusBadRequest)
	api.expect(http.MethodPost, decision, mentorToken, map[string]any{"decision": "approve"}, http.StatusOK)
	api.expect(http.MethodPost, decision, mentorToken, map[string]any{"decision": "reject"}, http.StatusConflict)

	api.expect(http.MethodPost, "/api/v1/chats/"+mentorID+"/messages", studentToken, map[string]any{"body": "Hello!"}, http.StatusCreated)
	api.expect(http.MethodPost, "/api/v1/chats/"+studentID+"/messages", mentorToken, map[string]any{"body": "Hi Ada"}, http.StatusCreated)
	api.expect(http.MethodPost, "/api/v1/chats/"+studentID+"/messages", mentorToken, map[string]any{"body": "   "}, http.StatusBadRequest)

	var history []struct {
		SenderID string `json:"senderId"`
		Body     string `json:"body"`
	}
	api.call(http.MethodGet, "/api/v1/chats/"+studentID+"/messages", mentorToken, nil, &history)
	if len(history) != 2 || history[0].Body != "Hello!" || history[1].SenderID != mentorID {
		t.Errorf("history: got %+v", history)
	}

	var contacts []struct {
		UserID string `json:"userId"`
	}
	api.call(http.MethodGet, "/api/v1/chats/contacts", studentToken, nil, &contacts)
	if len(contacts) != 1 || contacts[0].UserID != mentorID {
		t.Errorf("contacts: got %+v", contacts)
	}

	var received []struct {
		Status string `json:"status"`
	}
	api.call(http.MethodGet, "/api/v1/requests", mentorToken, nil, &received)
	if len(received) != 1 || received[0].Status != string(models.RequestStatusApproved) {
		t.Errorf("mentor requests: got %+v", received)
	}
}

func TestRolePermissions(t *testing.T) {
	api := newTestAPI(t)
	studentToken, _ := api.register("s@example.com", "Student", models.RoleStudent)
	mentorToken, _ := api.register("m@example.com", "Mentor", models.RoleMentor)

	admin, err := api.svc.AuthService.CreateAccount(context.Background(), "admin@example.com", "Admin", "admin123", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	adminAuth, err := api.svc.AuthService.IssueToken(admin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	adminToken := adminAuth.Token.AccessToken

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"anonymous profile", http.MethodGet, "/api/v1/users/me", "", http.StatusUnauthorized},
		{"student stats", http.MethodGet, "/api/v1/admin/stats", studentToken, http.StatusForbidden},
		{"admin stats", http.MethodGet, "/api/v1/admin/stats", adminToken, http.StatusOK},
		{"admin users", http.MethodGet, "/api/v1/admin/users?role=Mentor&page=1&size=10", adminToken, http.StatusOK},
		{"admin users far page", http.MethodGet, "/api/v1/admin/users?page=4611686018427387904&size=20", adminToken, http.StatusOK},
		{"admin bad role filter", http.MethodGet, "/api/v1/admin/users?role=Owner", adminToken, http.StatusBadRequest},
		{"admin profile", http.MethodGet, "/api/v1/users/me", adminToken, http.StatusForbidden},
		{"admin chat", http.MethodGet, "/api/v1/chats/contacts", adminToken, http.StatusForbidden},
		{"mentor matches", http.MethodGet, "/api/v1/matches/mentors", mentorToken, http.StatusForbidden},
		{"mentor gap", http.MethodGet, "/api/v1/careers/gap", mentorToken, http.StatusForbidden},
		{"student internships", http.MethodGet, "/api/v1/matches/internships", studentToken, http.StatusOK},
		{"student gap without goal", http.MethodGet, "/api/v1/careers/gap", studentToken, http.StatusUnprocessableEntity},
		{"public careers", http.MethodGet, "/api/v1/careers", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := api.call(tt.method, tt.path, tt.token, nil, nil)
			if code != tt.want {
				t.Errorf("got %d want %d (%+v)", code, tt.want, env.Error)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)
	api.register("ada@example.com", "Ada", models.RoleStudent)

	tests := []struct {
		name string
		path string
		body map[string]any
		want int
	}{
		{"duplicate email", "/api/v1/auth/register", map[string]any{"email": "ADA@example.com", "name": "Ada", "password": "secret123", "roleType": "Student"}, http.StatusConflict},
		{"admin self registration", "/api/v1/auth/register", map[string]any{"email": "x@example.com", "name": "X Y", "password": "secret123", "roleType": "Admin"}, http.StatusBadRequest},
		{"short password", "/api/v1/auth/register", map[string]any{"email": "y@example.com", "name": "Y Z", "password": "123", "roleType": "Mentor"}, http.StatusBadRequest},
		{"login ok", "/api/v1/auth/login", map[string]any{"email": "ada@example.com", "password": "secret123"}, http.StatusOK},
		{"wrong password", "/api/v1/auth/login", map[string]any{"email": "ada@example.com", "password": "nope-nope"}, http.StatusUnauthorized},
		{"unknown email", "/api/v1/auth/login", map[string]any{"email": "ghost@example.com", "password": "secret123"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := api.call(http.MethodPost, tt.path, "", tt.body, nil)
			if code != tt.want {
				t.Errorf("got %d want %d (%+v)", code, tt.want, env.Error)
			}
		})
	}
}
