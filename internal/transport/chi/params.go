package chi

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/criteria"
)

// criteriaParams are the query parameters of GET /v1/objects.
type criteriaParams struct {
	Catalog       *string   `json:"catalog,omitempty"`
	Group         *string   `json:"group,omitempty"`
	Type          *[]string `json:"type,omitempty"`
	Constellation *[]string `json:"constellation,omitempty"`
	MinSize       *float64  `json:"min_size,omitempty"`
	MaxSize       *float64  `json:"max_size,omitempty"`
	MinBMag       *float64  `json:"min_bmag,omitempty"`
	MaxBMag       *float64  `json:"max_bmag,omitempty"`
	MinVMag       *float64  `json:"min_vmag,omitempty"`
	MaxVMag       *float64  `json:"max_vmag,omitempty"`
	MinRA         *string   `json:"min_ra,omitempty"`
	MaxRA         *string   `json:"max_ra,omitempty"`
	MinDec        *string   `json:"min_dec,omitempty"`
	MaxDec        *string   `json:"max_dec,omitempty"`
	Name          *string   `json:"name,omitempty"`
	WithName      *bool     `json:"with_name,omitempty"`
	Addendum      *bool     `json:"addendum,omitempty"`
}

// bindQuery binds optional form-style query parameters, keyed by parameter
// name. Every dest is a pointer to a pointer left nil when the parameter is absent.
func bindQuery(r *http.Request, params map[string]any) error {
	query := r.URL.Query()
	for name, dest := range params {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			return err
		}
	}
	return nil
}

// bindRequired binds mandatory query parameters into dest values.
func bindRequired(r *http.Request, params map[string]any) error {
	query := r.URL.Query()
	for name, dest := range params {
		if err := runtime.BindQueryParameter("form", true, true, name, query, dest); err != nil {
			return err
		}
	}
	return nil
}

func bindCriteria(r *http.Request) (criteria.Criteria, error) {
	var p criteriaParams
	err := bindQuery(r, map[string]any{
		"catalog":       &p.Catalog,
		"group":         &p.Group,
		"type":          &p.Type,
		"constellation": &p.Constellation,
		"min_size":      &p.MinSize,
		"max_size":      &p.MaxSize,
		"min_bmag":      &p.MinBMag,
		"max_bmag":      &p.MaxBMag,
		"min_vmag":      &p.MinVMag,
		"max_vmag":      &p.MaxVMag,
		"min_ra":        &p.MinRA,
		"max_ra":        &p.MaxRA,
		"min_dec":       &p.MinDec,
		"max_dec":       &p.MaxDec,
		"name":          &p.Name,
		"with_name":     &p.WithName,
		"addendum":      &p.Addendum,
	})
	if err != nil {
		return criteria.Criteria{}, errors.Mark(errors.Wrap(err, "invalid criteria"), domain.ErrInvalidCriteria)
	}

	return criteria.Criteria{
		Catalog:        deref(p.Catalog),
		Group:          deref(p.Group),
		Types:          splitValues(p.Type),
		Constellations: splitValues(p.Constellation),
		MinSize:        p.MinSize,
		MaxSize:        p.MaxSize,
		MinBMag:        p.MinBMag,
		MaxBMag:        p.MaxBMag,
		MinVMag:        p.MinVMag,
		MaxVMag:        p.MaxVMag,
		MinRA:          deref(p.MinRA),
		MaxRA:          deref(p.MaxRA),
		MinDec:         deref(p.MinDec),
		MaxDec:         deref(p.MaxDec),
		NameContains:   deref(p.Name),
		HasCommonName:  p.WithName,
		Addendum:       p.Addendum,
	}, nil
}

// splitValues accepts both repeated parameters and comma separated lists.
func splitValues(p *[]string) []string {
	if p == nil {
		return nil
	}
	var out []string
	for _, v := range *p {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
