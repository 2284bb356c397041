package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"

	"github.com/HSouheill/salesapp_backend/config"
	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
	"github.com/HSouheill/salesapp_backend/utils"
)

type echoHandler = echo.HandlerFunc

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type fixture struct {
	store    *repositories.Store
	auth     *AuthController
	password *PasswordController
	user     *UserController
	product  *ProductController
	sale     *SaleController
	notifier *recordingNotifier
}

func newFixture(t *testing.T, mode config.LoginMatchMode) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := repositories.NewMemoryStore()
	notifier := &recordingNotifier{}

	return &fixture{
		store:    store,
		auth:     NewAuthController(store.Users, mode, logger),
		password: NewPasswordController(store.Users, notifier, logger),
		user:     NewUserController(store.Users, logger),
		product:  NewProductController(store.Products, logger),
		sale:     NewSaleController(store.Sales, logger),
		notifier: notifier,
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator()
	return e
}

// post sends body as JSON. A string body is sent verbatim.
func post(t *testing.T, h echo.HandlerFunc, body interface{}) (int, envelope) {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return serve(t, h, req)
}

func postForm(t *testing.T, h echo.HandlerFunc, form string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return serve(t, h, req)
}

func get(t *testing.T, h echo.HandlerFunc, params ...string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return serve(t, h, req, params...)
}

// serve runs h directly. params alternate name, value.
func serve(t *testing.T, h echo.HandlerFunc, req *http.Request, params ...string) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	require.NoError(t, h(c))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v), string(env.Data))
}

func (f *fixture) register(t *testing.T, body map[string]string) models.User {
	t.Helper()
	code, env := post(t, f.auth.Register, body)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success, env.Message)

	user, err := f.store.Users.FindOne(context.Background(), models.UserFilter{Email: body["email"]})
	require.NoError(t, err)
	return *user
}

type recordingNotifier struct {
	emails []string
	err    error
}

func (n *recordingNotifier) NotifyPasswordReset(email, _ string) error {
	n.emails = append(n.emails, email)
	return n.err
}

// failingSales fails every call with err
type failingSales struct {
	err error
}

func (f failingSales) Create(context.Context, *models.Sale) error { return f.err }

func (f failingSales) List(context.Context) ([]models.Sale, error) { return nil, f.err }

func (f failingSales) Update(context.Context, primitive.ObjectID, models.SaleUpdate) error {
	return f.err
}

func (f failingSales) Delete(context.Context, primitive.ObjectID) error { return f.err }
