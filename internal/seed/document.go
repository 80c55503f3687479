// Package seed loads the static tenants document into a store and
// provisions new tenants.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// Document is the static tenants configuration:
//
//	{"tenants": {"demo": {"id": "demo", "name": ..., "users": [...], ...}}}
type Document struct {
	Tenants map[string]TenantDoc `json:"tenants"`
}

// TenantDoc is one tenant with its initial users and catalogue.
type TenantDoc struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Branding    model.Branding    `json:"branding"`
	Strings     map[string]string `json:"strings"`
	AdminEmails []string          `json:"adminEmails"`
	Users       []model.User      `json:"users"`
	Categories  []model.Category  `json:"categories"`
	Products    []model.Product   `json:"products"`
}

// LoadFile reads and validates the document at path.
func LoadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tenants config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a tenants document.  A tenant without an
// id takes its map key.
func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode tenants config: %w", err)
	}
	for key, t := range doc.Tenants {
		if t.ID == "" {
			t.ID = key
		}
		if t.ID != key {
			return nil, fmt.Errorf("tenant %q declared under key %q", t.ID, key)
		}
		if !utils.ValidTenantID(t.ID) {
			return nil, fmt.Errorf("invalid tenant id %q", t.ID)
		}
		doc.Tenants[key] = t
	}
	return &doc, nil
}

// IDs returns the tenant ids in sorted order.
func (d *Document) IDs() []string {
	ids := make([]string, 0, len(d.Tenants))
	for id := range d.Tenants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
