package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"alora/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var levels = []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleStaff}

// Permission lists the admin levels allowed on one route pattern.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// FindPermissions returns the entry for a route pattern and method, or the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	return r.index[method+" "+path]
}

// Parse decodes a permission table and rejects levels no account can hold.
func Parse(raw []byte) (*PermissionData, error) {
	var data PermissionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}

	data.index = make(map[string]Permission, len(data.Endpoints))

	for _, endpoint := range data.Endpoints {
		for _, level := range endpoint.Permissions {
			if !slices.Contains(levels, level) {
				return nil, fmt.Errorf("unknown level %q on %s %s", level, endpoint.Method, endpoint.Path)
			}
		}

		data.index[endpoint.Method+" "+endpoint.Path] = endpoint
	}

	return &data, nil
}

var embedded = sync.OnceValue(func() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Successfully loaded embedded permissions")

	return data
})

// Get returns the embedded permission table. A nil table makes RBAC deny every request.
func Get() *PermissionData {
	return embedded()
}
