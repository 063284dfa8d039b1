package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode"
)

// Charset para contraseñas temporales: sin caracteres visualmente ambiguos (I, O, 0, 1, l).
const Charset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%*-_"

// LongitudTemporal longitud fija de la contraseña temporal generada en la verificación.
const LongitudTemporal = 12

// GenerarTemporal produce una contraseña aleatoria de length caracteres tomados
// uniformemente de Charset. Usa crypto/rand: las credenciales temporales se envían
// por correo y no pueden salir de un generador predecible.
func GenerarTemporal(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password: longitud inválida %d", length)
	}
	max := big.NewInt(int64(len(Charset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("password: fuente aleatoria: %w", err)
		}
		out[i] = Charset[n.Int64()]
	}
	return string(out), nil
}

// CumplePolitica valida la política de contraseñas del registro de usuarios:
// mínimo 8 caracteres, al menos 1 mayúscula y al menos 1 símbolo (no letra ni dígito).
func CumplePolitica(s string) bool {
	if len([]rune(s)) < 8 {
		return false
	}
	var mayuscula, simbolo bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			mayuscula = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r):
			simbolo = true
		}
	}
	return mayuscula && simbolo
}
