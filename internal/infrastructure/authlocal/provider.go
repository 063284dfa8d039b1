package authlocal

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

var _ auth.Service = (*Provider)(nil)

// Provider implementa auth.Service en memoria para desarrollo y tests
// (AUTH_MODE=local): sin plataforma hospedada ni correos reales. Las contraseñas
// se guardan como hash bcrypt, igual que haría cualquier backend propio.
type Provider struct {
	mu       sync.RWMutex
	cuentas  map[string]*cuenta // por email
	sesiones map[string]string  // access token -> email
}

type cuenta struct {
	userID       string
	email        string
	passwordHash []byte
	metadata     map[string]any
}

// NewProvider construye el proveedor vacío.
func NewProvider() *Provider {
	return &Provider{
		cuentas:  make(map[string]*cuenta),
		sesiones: make(map[string]string),
	}
}

// SignUp registra la cuenta en memoria. domain.ErrEmailYaExiste si el email ya tiene cuenta.
func (p *Provider) SignUp(ctx context.Context, in auth.SignUpParams) (*entity.CuentaProvisionada, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.cuentas[in.Email]; ok {
		return nil, domain.ErrEmailYaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c := &cuenta{
		userID:       uuid.New().String(),
		email:        in.Email,
		passwordHash: hash,
		metadata:     in.Metadata,
	}
	p.cuentas[in.Email] = c
	return &entity.CuentaProvisionada{UserID: c.userID, Email: c.email}, nil
}

// SignIn compara contra el hash bcrypt y emite un access token efímero.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*auth.Sesion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cuentas[email]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token := uuid.New().String()
	p.sesiones[token] = email

	tipo, _ := c.metadata["tipo_usuario"].(string)
	return &auth.Sesion{
		UserID:      c.userID,
		Email:       c.email,
		TipoUsuario: tipo,
		AccessToken: token,
	}, nil
}

// Recover no envía nada en modo local; tampoco revela si el correo existe.
func (p *Provider) Recover(ctx context.Context, email, redirectURL string) error {
	return nil
}

// UpdatePassword cambia la contraseña de la sesión dueña del token.
func (p *Provider) UpdatePassword(ctx context.Context, accessToken, nueva string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	email, ok := p.sesiones[accessToken]
	if !ok {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.cuentas[email].passwordHash = hash
	return nil
}
