package entity

import (
	"encoding/json"
	"fmt"
)

// Permission describe lo que un usuario puede hacer dentro de un módulo.
// Sustituye a los mapas dinámicos por clave: el módulo debe pertenecer a la
// enumeración cerrada y el registro es un struct tipado.
type Permission struct {
	Module    string `json:"module"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

// Acciones sobre un módulo (para PermissionSet.Can).
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// PermissionSet agrupa los permisos de un usuario, uno por módulo como máximo.
// Se valida en la construcción: módulos desconocidos o duplicados son rechazados.
type PermissionSet struct {
	perms map[string]Permission
}

// NewPermissionSet valida y construye el conjunto de permisos.
func NewPermissionSet(perms []Permission) (PermissionSet, error) {
	set := PermissionSet{perms: make(map[string]Permission, len(perms))}
	for _, p := range perms {
		if !IsValidModule(p.Module) {
			return PermissionSet{}, fmt.Errorf("permiso sobre módulo desconocido %q", p.Module)
		}
		if _, dup := set.perms[p.Module]; dup {
			return PermissionSet{}, fmt.Errorf("permiso duplicado para el módulo %q", p.Module)
		}
		set.perms[p.Module] = p
	}
	return set, nil
}

// FullPermissionSet devuelve permisos completos sobre todos los módulos (admin/master).
func FullPermissionSet() PermissionSet {
	perms := make([]Permission, 0, len(AllModules()))
	for _, m := range AllModules() {
		perms = append(perms, Permission{Module: m, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true})
	}
	set, _ := NewPermissionSet(perms) // módulos provienen de la enumeración, no puede fallar
	return set
}

// Can informa si el conjunto autoriza la acción sobre el módulo.
// Módulo sin registro o acción desconocida → false.
func (s PermissionSet) Can(module, action string) bool {
	p, ok := s.perms[module]
	if !ok {
		return false
	}
	switch action {
	case ActionView:
		return p.CanView
	case ActionCreate:
		return p.CanCreate
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	}
	return false
}

// List devuelve los permisos en orden de la enumeración de módulos.
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s.perms))
	for _, m := range AllModules() {
		if p, ok := s.perms[m]; ok {
			out = append(out, p)
		}
	}
	return out
}

// MarshalJSON serializa como arreglo de Permission (persistencia en JSONB).
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON deserializa y re-valida contra la enumeración de módulos.
func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var perms []Permission
	if err := json.Unmarshal(data, &perms); err != nil {
		return err
	}
	set, err := NewPermissionSet(perms)
	if err != nil {
		return err
	}
	*s = set
	return nil
}
