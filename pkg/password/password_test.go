package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvarez-ortega/sisaep-api/pkg/password"
)

func TestGenerarTemporal_LongitudYCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		out, err := password.GenerarTemporal(password.LongitudTemporal)
		require.NoError(t, err)
		assert.Len(t, out, 12)
		for _, c := range out {
			assert.True(t, strings.ContainsRune(password.Charset, c),
				"carácter %q fuera del charset permitido", c)
		}
	}
}

func TestGenerarTemporal_SinCaracteresAmbiguos(t *testing.T) {
	// El charset excluye I, O, 0, 1 y l; ninguna salida debe contenerlos.
	out, err := password.GenerarTemporal(200)
	require.NoError(t, err)
	assert.NotContains(t, out, "I")
	assert.NotContains(t, out, "O")
	assert.NotContains(t, out, "0")
	assert.NotContains(t, out, "1")
	assert.NotContains(t, out, "l")
}

// Dos invocaciones consecutivas deben diferir con probabilidad abrumadora:
// prueba estadística sobre varias muestras, no una comparación única.
func TestGenerarTemporal_SalidasDistintas(t *testing.T) {
	vistas := make(map[string]bool)
	for i := 0; i < 20; i++ {
		out, err := password.GenerarTemporal(password.LongitudTemporal)
		require.NoError(t, err)
		vistas[out] = true
	}
	assert.Greater(t, len(vistas), 18, "las contraseñas generadas deben ser prácticamente únicas")
}

func TestGenerarTemporal_LongitudInvalida(t *testing.T) {
	_, err := password.GenerarTemporal(0)
	assert.Error(t, err)
	_, err = password.GenerarTemporal(-3)
	assert.Error(t, err)
}

func TestCumplePolitica(t *testing.T) {
	cases := []struct {
		nombre string
		in     string
		want   bool
	}{
		{"válida con mayúscula y símbolo", "Segura#2024", true},
		{"muy corta", "Ab#1", false},
		{"sin mayúscula", "segura#2024", false},
		{"sin símbolo", "Segura2024", false},
		{"mayúscula acentuada cuenta", "Ñongo!abc", true},
		{"espacios no cuentan como símbolo", "Segura 2024", false},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, password.CumplePolitica(tc.in))
		})
	}
}
