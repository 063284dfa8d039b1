package gotrue_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/infrastructure/gotrue"
)

const testAnonKey = "anon-key-de-prueba"

// servidor de prueba que captura la última petición recibida.
type captura struct {
	metodo string
	path   string
	query  string
	apikey string
	body   map[string]any
}

func newServer(t *testing.T, status int, respuesta string, cap *captura) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.metodo = r.Method
		cap.path = r.URL.Path
		cap.query = r.URL.RawQuery
		cap.apikey = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&cap.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respuesta))
	}))
}

func TestSignUp_Exito(t *testing.T) {
	var cap captura
	srv := newServer(t, http.StatusOK,
		`{"id":"uid-abc","email":"maria@example.com"}`, &cap)
	defer srv.Close()

	c := gotrue.NewClient(srv.URL, testAnonKey)
	cuenta, err := c.SignUp(context.Background(), auth.SignUpParams{
		Email:       "maria@example.com",
		Password:    "Temporal#123",
		RedirectURL: "https://escuela.example/Bienvenido.html",
		Metadata:    map[string]any{"tipo_usuario": "alumno"},
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-abc", cuenta.UserID)
	assert.Equal(t, "maria@example.com", cuenta.Email)

	// La petición debe llevar la clave pública, la metadata y el redirect del correo.
	assert.Equal(t, "/auth/v1/signup", cap.path)
	assert.Equal(t, testAnonKey, cap.apikey)
	assert.Contains(t, cap.query, "redirect_to=")
	datos, ok := cap.body["data"].(map[string]any)
	require.True(t, ok, "la metadata viaja en el campo data")
	assert.Equal(t, "alumno", datos["tipo_usuario"])
}

// El código estructurado user_already_exists se mapea al error tipado del dominio.
func TestSignUp_CorreoYaRegistrado(t *testing.T) {
	var cap captura
	srv := newServer(t, http.StatusUnprocessableEntity,
		`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`, &cap)
	defer srv.Close()

	c := gotrue.NewClient(srv.URL, testAnonKey)
	_, err := c.SignUp(context.Background(), auth.SignUpParams{
		Email:    "maria@example.com",
		Password: "Temporal#123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailYaExiste)
}

// Un 422 sin el código de duplicado (ej. contraseña débil) NO debe confundirse
// con correo duplicado: se propaga como error genérico de la plataforma.
func TestSignUp_OtroError422(t *testing.T) {
	var cap captura
	srv := newServer(t, http.StatusUnprocessableEntity,
		`{"code":422,"error_code":"weak_password","msg":"Password should be at least 6 characters"}`, &cap)
	defer srv.Close()

	c := gotrue.NewClient(srv.URL, testAnonKey)
	_, err := c.SignUp(context.Background(), auth.SignUpParams{
		Email:    "maria@example.com",
		Password: "x",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailYaExiste)
	assert.Contains(t, err.Error(), "weak_password")
}

func TestSignIn_Exito(t *testing.T) {
	var cap captura
	srv := newServer(t, http.StatusOK,
		`{"access_token":"tok-1","user":{"id":"uid-abc","email":"maria@example.com","user_metadata":{"tipo_usuario":"profesor"}}}`, &cap)
	defer srv.Close()

	c := gotrue.NewClient(srv.URL, testAnonKey)
	ses, err := c.SignIn(context.Background(), "maria@example.com", "Temporal#123")
	require.NoError(t, err)

	assert.Equal(t, "uid-abc", ses.UserID)
	assert.Equal(t, "profesor", ses.TipoUsuario)
	assert.Equal(t, "tok-1", ses.AccessToken)
	assert.Contains(t, cap.query, "grant_type=password")
}

func TestSignIn_CredencialesInvalidas(t *testing.T) {
	var cap captura
	srv := newServer(t, http.StatusBadRequest,
		`{"code":400,"error_code":"invalid_credentials","error_description":"Invalid login credentials"}`, &cap)
	defer srv.Close()

	c := gotrue.NewClient(srv.URL, testAnonKey)
	_, err := c.SignIn(context.Background(), "maria@example.com", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdatePassword_TokenInvalido(t *testing.T) {
	var cap captura
	srv := newServer(t, http.StatusUnauthorized,
		`{"code":401,"error_code":"bad_jwt","msg":"invalid JWT"}`, &cap)
	defer srv.Close()

	c := gotrue.NewClient(srv.URL, testAnonKey)
	err := c.UpdatePassword(context.Background(), "token-expirado", "Nueva#Clave1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
