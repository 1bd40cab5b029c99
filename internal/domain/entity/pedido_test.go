package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

func TestPuedeTransicionar_CadenaCompleta(t *testing.T) {
	// pendiente → procesando → enviado → entregado
	assert.True(t, entity.PuedeTransicionar(entity.EstadoPendiente, entity.EstadoProcesando))
	assert.True(t, entity.PuedeTransicionar(entity.EstadoProcesando, entity.EstadoEnviado))
	assert.True(t, entity.PuedeTransicionar(entity.EstadoEnviado, entity.EstadoEntregado))
}

func TestPuedeTransicionar_SaltosProhibidos(t *testing.T) {
	assert.False(t, entity.PuedeTransicionar(entity.EstadoPendiente, entity.EstadoEnviado),
		"no se puede saltar procesando")
	assert.False(t, entity.PuedeTransicionar(entity.EstadoPendiente, entity.EstadoEntregado))
	assert.False(t, entity.PuedeTransicionar(entity.EstadoEnviado, entity.EstadoProcesando),
		"no hay retroceso de estados")
}

func TestPuedeTransicionar_Cancelado(t *testing.T) {
	// cancelado es alcanzable desde cualquier estado no terminal
	assert.True(t, entity.PuedeTransicionar(entity.EstadoPendiente, entity.EstadoCancelado))
	assert.True(t, entity.PuedeTransicionar(entity.EstadoProcesando, entity.EstadoCancelado))
	assert.True(t, entity.PuedeTransicionar(entity.EstadoEnviado, entity.EstadoCancelado))

	// entregado y cancelado son terminales
	assert.False(t, entity.PuedeTransicionar(entity.EstadoEntregado, entity.EstadoCancelado))
	assert.False(t, entity.PuedeTransicionar(entity.EstadoCancelado, entity.EstadoPendiente))
}

func TestEstadoValido(t *testing.T) {
	for _, s := range []string{
		entity.EstadoPendiente, entity.EstadoProcesando, entity.EstadoEnviado,
		entity.EstadoEntregado, entity.EstadoCancelado,
	} {
		assert.True(t, entity.EstadoValido(s), s)
	}
	assert.False(t, entity.EstadoValido("despachado"))
	assert.False(t, entity.EstadoValido(""))
}
