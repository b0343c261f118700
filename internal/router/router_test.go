package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-go/internal/config"
	"todo-go/internal/models"
	"todo-go/internal/repository"
	"todo-go/internal/service"
	"todo-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.ExpireMinutes = 60
	cfg.Admin.Username = "admin"
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "adminpass"

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm, cfg.JWT.GetExpireDuration())

	// 引导管理员账户
	authService := service.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTokenRepository(db),
		jwtManager,
		cfg,
	)
	if err := authService.InitAdmin(); err != nil {
		t.Fatalf("初始化管理员失败: %v", err)
	}

	return SetupRouter(cfg, jwtManager, log, db, nil)
}

// doJSON 发送JSON请求
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求体失败: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRaw 发送原始请求体
func doRaw(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v (body: %s)", err, w.Body.String())
	}
	return body
}

// register 注册用户并返回Token
func register(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
		"username":   username,
		"email":      username + "@x.com",
		"first_name": "Test",
		"last_name":  "User",
		"password":   "p1",
		"password2":  "p1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", username, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response %s", username, w.Body.String())
	}
	return token
}

func tomorrowStr() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func yesterdayStr() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
		"username":   "alice",
		"email":      "a@x.com",
		"first_name": "A",
		"last_name":  "L",
		"password":   "p1",
		"password2":  "p1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Successfully registered a new user!" {
		t.Errorf("message = %v", body["message"])
	}
	regToken, _ := body["token"].(string)
	if regToken == "" {
		t.Fatal("no token in registration response")
	}

	w = doJSON(t, r, http.MethodPost, "/users/login", "", map[string]string{
		"username": "alice",
		"password": "p1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	if body["token"] != regToken {
		t.Error("login token differs from registration token")
	}
	if body["created"] != false {
		t.Errorf("created = %v, want false", body["created"])
	}
	if body["is_superuser"] != false {
		t.Errorf("is_superuser = %v, want false", body["is_superuser"])
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
		"username":   "alice",
		"email":      "a@x.com",
		"first_name": "A",
		"last_name":  "L",
		"password":   "p1",
		"password2":  "p2",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	body := decodeBody(t, w)
	errs, _ := body["errors"].(map[string]interface{})
	if errs["password"] != "Sorry, the password did not match" {
		t.Errorf("password error = %v", errs["password"])
	}

	// 注册失败后登录也必须失败
	w = doJSON(t, r, http.MethodPost, "/users/login", "", map[string]string{
		"username": "alice",
		"password": "p1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("login after failed registration: status = %d, want 400", w.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := newTestServer(t)
	register(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/users/register", "", map[string]string{
		"username":   "alice",
		"email":      "other@x.com",
		"first_name": "A",
		"last_name":  "L",
		"password":   "p1",
		"password2":  "p1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Username already exists" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestMalformedJSON(t *testing.T) {
	r := newTestServer(t)
	token := register(t, r, "alice")

	cases := []struct {
		method, path, token string
	}{
		{http.MethodPost, "/users/register", ""},
		{http.MethodPost, "/users/login", ""},
		{http.MethodPost, "/task", token},
		{http.MethodPost, "/note", token},
	}
	for _, tc := range cases {
		w := doRaw(t, r, tc.method, tc.path, tc.token, "{not json")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: status = %d, want 400", tc.method, tc.path, w.Code)
			continue
		}
		body := decodeBody(t, w)
		if body["message"] != "JSON decoding error" {
			t.Errorf("%s %s: message = %v", tc.method, tc.path, body["message"])
		}
		if body["result"] != "error" {
			t.Errorf("%s %s: result = %v", tc.method, tc.path, body["result"])
		}
	}
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestServer(t)
	token := register(t, r, "alice")

	// 创建
	w := doJSON(t, r, http.MethodPost, "/task", token, map[string]string{
		"title":       "Buy milk",
		"description": "2%",
		"deadline":    tomorrowStr(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Successfully added a new task" {
		t.Errorf("message = %v", body["message"])
	}
	details, _ := body["details"].(map[string]interface{})
	if details["is_active"] != true {
		t.Errorf("is_active = %v, want true", details["is_active"])
	}
	if details["status"] != "Pending" {
		t.Errorf("status = %v, want Pending", details["status"])
	}
	if details["user"] != "alice" {
		t.Errorf("user = %v, want alice", details["user"])
	}
	if details["deadline"] != tomorrowStr() {
		t.Errorf("deadline = %v, want %s", details["deadline"], tomorrowStr())
	}
	taskID := int(details["id"].(float64))

	// 归档
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/tasks/archive/%d", taskID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("archive status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	if body["message"] != "Task archived successfully" {
		t.Errorf("message = %v", body["message"])
	}
	details, _ = body["details"].(map[string]interface{})
	if details["is_active"] != false {
		t.Errorf("is_active = %v after archive, want false", details["is_active"])
	}

	// 重复归档失败
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/tasks/archive/%d", taskID), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second archive status = %d, want 400", w.Code)
	}
	body = decodeBody(t, w)
	if body["error"] != "Task is already archived" {
		t.Errorf("error = %v", body["error"])
	}

	// 激活
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/tasks/activate/%d", taskID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("activate status = %d, want 200", w.Code)
	}
	body = decodeBody(t, w)
	if body["message"] != "Task activated successfully" {
		t.Errorf("message = %v", body["message"])
	}

	// 重复激活失败
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/tasks/activate/%d", taskID), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second activate status = %d, want 400", w.Code)
	}

	// 部分更新
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/task/%d", taskID), token, map[string]string{
		"status": "Done",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("update status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	details, _ = body["details"].(map[string]interface{})
	if details["status"] != "Done" {
		t.Errorf("status = %v after update, want Done", details["status"])
	}
	if details["title"] != "Buy milk" {
		t.Errorf("title = %v after partial update, want Buy milk", details["title"])
	}

	// 删除
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/task/%d", taskID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}
	body = decodeBody(t, w)
	if body["message"] != "Task successfully deleted" {
		t.Errorf("message = %v", body["message"])
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/task/%d", taskID), token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestTaskDeadlineInPast(t *testing.T) {
	r := newTestServer(t)
	token := register(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/task", token, map[string]string{
		"title":       "Late",
		"description": "d",
		"deadline":    yesterdayStr(),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	errs, _ := body["errors"].(map[string]interface{})
	if errs["deadline"] != "Deadline cannot be in the past" {
		t.Errorf("deadline error = %v", errs["deadline"])
	}
}

func TestTaskDuplicateTitleAcrossUsers(t *testing.T) {
	r := newTestServer(t)
	aliceToken := register(t, r, "alice")
	bobToken := register(t, r, "bob")

	req := map[string]string{
		"title":       "Shared title",
		"description": "d",
		"deadline":    tomorrowStr(),
	}

	if w := doJSON(t, r, http.MethodPost, "/task", aliceToken, req); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, want 201", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/task", bobToken, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	errs, _ := body["errors"].(map[string]interface{})
	if errs["title"] != "Operation failed, there is an existing task with the same title." {
		t.Errorf("title error = %v", errs["title"])
	}
}

func TestTaskOwnershipHiddenAs404(t *testing.T) {
	r := newTestServer(t)
	aliceToken := register(t, r, "alice")
	bobToken := register(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/task", aliceToken, map[string]string{
		"title":       "Private",
		"description": "d",
		"deadline":    tomorrowStr(),
	})
	details, _ := decodeBody(t, w)["details"].(map[string]interface{})
	taskID := int(details["id"].(float64))

	paths := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodGet, fmt.Sprintf("/task/%d", taskID), nil},
		{http.MethodPatch, fmt.Sprintf("/task/%d", taskID), map[string]string{"status": "Done"}},
		{http.MethodDelete, fmt.Sprintf("/task/%d", taskID), nil},
		{http.MethodPatch, fmt.Sprintf("/tasks/archive/%d", taskID), nil},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, bobToken, p.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s by non-owner: status = %d, want 404", p.method, p.path, w.Code)
		}
	}

	// 所有者的列表不包含他人任务
	w = doJSON(t, r, http.MethodGet, "/task", bobToken, nil)
	var tasks []interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("解析列表失败: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("bob's task list has %d entries, want 0", len(tasks))
	}
}

func TestNoteLifecycle(t *testing.T) {
	r := newTestServer(t)
	token := register(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/note", token, map[string]string{
		"title":   "Groceries",
		"content": "milk, eggs",
		"color":   "yellow",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Successfully added a new note" {
		t.Errorf("message = %v", body["message"])
	}
	details, _ := body["details"].(map[string]interface{})
	if details["content"] != "milk, eggs" {
		t.Errorf("content = %v", details["content"])
	}
	if details["user"] != "alice" {
		t.Errorf("user = %v, want alice", details["user"])
	}
	noteID := int(details["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/note/%d", noteID), token, map[string]string{
		"content": "just milk",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("update status = %d, want 201", w.Code)
	}
	body = decodeBody(t, w)
	if body["message"] != "Note successfully updated" {
		t.Errorf("message = %v", body["message"])
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/note/%d", noteID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}
	body = decodeBody(t, w)
	if body["message"] != "Note Successfully deleted" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestUnauthenticatedRejected(t *testing.T) {
	r := newTestServer(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/task"},
		{http.MethodPost, "/task"},
		{http.MethodGet, "/note"},
		{http.MethodGet, "/all_tasks"},
		{http.MethodPatch, "/tasks/archive/1"},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", p.method, p.path, w.Code)
		}
	}
}

func TestAdminEndpointsForbiddenForNormalUser(t *testing.T) {
	r := newTestServer(t)
	token := register(t, r, "alice")

	paths := []struct{ method, path string }{
		{http.MethodGet, "/all_tasks"},
		{http.MethodGet, "/all_notes"},
		{http.MethodGet, "/all_users"},
		{http.MethodPatch, "/set_as_admin/1"},
		{http.MethodPatch, "/set_as_normal_user/1"},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, token, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s as normal user: status = %d, want 403", p.method, p.path, w.Code)
		}
	}
}

func TestAdminFlow(t *testing.T) {
	r := newTestServer(t)
	aliceToken := register(t, r, "alice")

	// 管理员登录
	w := doJSON(t, r, http.MethodPost, "/users/login", "", map[string]string{
		"username": "admin",
		"password": "adminpass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login status = %d (body: %s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["is_superuser"] != true {
		t.Errorf("is_superuser = %v for admin, want true", body["is_superuser"])
	}
	adminToken, _ := body["token"].(string)

	// 普通用户创建一个任务，管理员能在全量列表中看到
	if w := doJSON(t, r, http.MethodPost, "/task", aliceToken, map[string]string{
		"title":       "Visible to admin",
		"description": "d",
		"deadline":    tomorrowStr(),
	}); w.Code != http.StatusCreated {
		t.Fatalf("create task status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/all_tasks", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("all_tasks status = %d", w.Code)
	}
	var tasks []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("解析列表失败: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("all_tasks returned %d tasks, want 1", len(tasks))
	}
	if tasks[0]["user"] != "alice" {
		t.Errorf("task user = %v, want alice", tasks[0]["user"])
	}

	// 找到alice的用户ID
	w = doJSON(t, r, http.MethodGet, "/all_users", adminToken, nil)
	var users []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatalf("解析用户列表失败: %v", err)
	}
	var aliceID int
	for _, u := range users {
		if u["username"] == "alice" {
			aliceID = int(u["id"].(float64))
		}
	}
	if aliceID == 0 {
		t.Fatal("alice not found in all_users")
	}

	// 提升为管理员
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/set_as_admin/%d", aliceID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set_as_admin status = %d (body: %s)", w.Code, w.Body.String())
	}
	body = decodeBody(t, w)
	details, _ := body["details"].(map[string]interface{})
	if details["is_superuser"] != true {
		t.Errorf("is_superuser = %v after promotion, want true", details["is_superuser"])
	}

	// 重复提升失败
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/set_as_admin/%d", aliceID), adminToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second set_as_admin status = %d, want 400", w.Code)
	}
	body = decodeBody(t, w)
	if body["error"] != "User is already an admin" {
		t.Errorf("error = %v", body["error"])
	}

	// 降级
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/set_as_normal_user/%d", aliceID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set_as_normal_user status = %d", w.Code)
	}

	// 目标用户不存在
	w = doJSON(t, r, http.MethodPatch, "/set_as_admin/9999", adminToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("set_as_admin on missing user: status = %d, want 404", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodDelete, "/users/register", "", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /users/register: status = %d, want 405", w.Code)
	}
}
