package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

var _ auth.Service = (*Client)(nil)

// Client implementa el puerto auth.Service contra el API REST de la plataforma
// de autenticación hospedada (GoTrue). Usa net/http de la stdlib igual que el
// resto de clientes salientes del proyecto.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL es la raíz del proyecto
// (https://<proyecto>.supabase.co) y anonKey la clave pública.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// platformError cuerpo de error del API de la plataforma. ErrorCode es el código
// estructurado (ej. "user_already_exists"); se usa en lugar de inspeccionar el
// texto del mensaje.
type platformError struct {
	Code      int    `json:"code"`
	ErrorCode string `json:"error_code"`
	Msg       string `json:"msg"`
	ErrorDesc string `json:"error_description"`
}

func (e *platformError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("plataforma auth: %s (%s)", e.Msg, e.ErrorCode)
	}
	return fmt.Sprintf("plataforma auth: %s (%s)", e.ErrorDesc, e.ErrorCode)
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type userBody struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        userBody `json:"user"`
}

// SignUp da de alta la cuenta con metadata y destino del correo de confirmación.
// Mapea user_already_exists/email_exists a domain.ErrEmailYaExiste.
func (c *Client) SignUp(ctx context.Context, p auth.SignUpParams) (*entity.CuentaProvisionada, error) {
	endpoint := c.baseURL + "/auth/v1/signup"
	if p.RedirectURL != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(p.RedirectURL)
	}
	var out userBody
	err := c.do(ctx, http.MethodPost, endpoint, "", signUpRequest{
		Email:    p.Email,
		Password: p.Password,
		Data:     p.Metadata,
	}, &out)
	if err != nil {
		var pe *platformError
		if errors.As(err, &pe) {
			switch pe.ErrorCode {
			case "user_already_exists", "email_exists":
				return nil, domain.ErrEmailYaExiste
			}
		}
		return nil, err
	}
	return &entity.CuentaProvisionada{UserID: out.ID, Email: out.Email}, nil
}

// SignIn ejecuta el password grant y extrae el tipo de usuario de la metadata.
func (c *Client) SignIn(ctx context.Context, email, password string) (*auth.Sesion, error) {
	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, endpoint, "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		var pe *platformError
		if errors.As(err, &pe) && pe.Code == http.StatusBadRequest {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	tipo, _ := out.User.UserMetadata["tipo_usuario"].(string)
	return &auth.Sesion{
		UserID:      out.User.ID,
		Email:       out.User.Email,
		TipoUsuario: tipo,
		AccessToken: out.AccessToken,
	}, nil
}

// Recover dispara el correo de restablecimiento.
func (c *Client) Recover(ctx context.Context, email, redirectURL string) error {
	endpoint := c.baseURL + "/auth/v1/recover"
	if redirectURL != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(redirectURL)
	}
	return c.do(ctx, http.MethodPost, endpoint, "", map[string]string{"email": email}, nil)
}

// UpdatePassword cambia la contraseña de la sesión dueña del access token.
func (c *Client) UpdatePassword(ctx context.Context, accessToken, nueva string) error {
	endpoint := c.baseURL + "/auth/v1/user"
	err := c.do(ctx, http.MethodPut, endpoint, accessToken, map[string]string{"password": nueva}, nil)
	if err != nil {
		var pe *platformError
		if errors.As(err, &pe) && pe.Code == http.StatusUnauthorized {
			return domain.ErrUnauthorized
		}
	}
	return err
}

// do ejecuta la petición con los headers de la plataforma y decodifica la
// respuesta. Un status >= 400 se devuelve como *platformError.
func (c *Client) do(ctx context.Context, method, endpoint, bearer string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("serializar petición: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llamada a plataforma auth: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		pe := &platformError{Code: resp.StatusCode}
		_ = json.Unmarshal(raw, pe)
		if pe.Code == 0 {
			pe.Code = resp.StatusCode
		}
		return pe
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decodificar respuesta: %w", err)
		}
	}
	return nil
}
