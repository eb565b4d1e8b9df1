package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

func TestNewPermissionSet_ValidaModulos(t *testing.T) {
	set, err := entity.NewPermissionSet([]entity.Permission{
		{Module: entity.ModuleBilling, CanView: true, CanCreate: true},
		{Module: entity.ModuleCatalog, CanView: true},
	})
	require.NoError(t, err)

	assert.True(t, set.Can(entity.ModuleBilling, entity.ActionView))
	assert.True(t, set.Can(entity.ModuleBilling, entity.ActionCreate))
	assert.False(t, set.Can(entity.ModuleBilling, entity.ActionDelete))
	assert.False(t, set.Can(entity.ModuleCatalog, entity.ActionCreate))
	// módulo sin registro → false
	assert.False(t, set.Can(entity.ModuleOrders, entity.ActionView))
	// acción desconocida → false
	assert.False(t, set.Can(entity.ModuleBilling, "transmit"))
}

func TestNewPermissionSet_RechazaModuloDesconocido(t *testing.T) {
	_, err := entity.NewPermissionSet([]entity.Permission{
		{Module: "contabilidad", CanView: true},
	})
	assert.Error(t, err, "un módulo fuera de la enumeración debe rechazarse")
}

func TestNewPermissionSet_RechazaDuplicados(t *testing.T) {
	_, err := entity.NewPermissionSet([]entity.Permission{
		{Module: entity.ModuleBilling, CanView: true},
		{Module: entity.ModuleBilling, CanEdit: true},
	})
	assert.Error(t, err)
}

func TestFullPermissionSet_TodoPermitido(t *testing.T) {
	set := entity.FullPermissionSet()
	for _, m := range entity.AllModules() {
		for _, a := range []string{entity.ActionView, entity.ActionCreate, entity.ActionEdit, entity.ActionDelete} {
			assert.True(t, set.Can(m, a), "módulo %s acción %s", m, a)
		}
	}
}

func TestPermissionSet_JSONRoundTripRevalida(t *testing.T) {
	set, err := entity.NewPermissionSet([]entity.Permission{
		{Module: entity.ModuleReceiving, CanView: true, CanCreate: true},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(set)
	require.NoError(t, err)

	var back entity.PermissionSet
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Can(entity.ModuleReceiving, entity.ActionCreate))
	assert.False(t, back.Can(entity.ModuleReceiving, entity.ActionDelete))
}

func TestPermissionSet_UnmarshalRechazaModuloInvalido(t *testing.T) {
	raw := []byte(`[{"module":"hackeo","can_view":true}]`)
	var set entity.PermissionSet
	assert.Error(t, json.Unmarshal(raw, &set),
		"datos persistidos con módulos fuera de la enumeración deben rechazarse al leer")
}
