package presentation

import (
	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/domain/perspective"
)

// PerspectiveDTO represents a perspective for presentation
type PerspectiveDTO struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Menu          string   `json:"menu" yaml:"menu"`
	PageObject    string   `json:"page_object" yaml:"page_object"`
	Distributions []string `json:"distributions" yaml:"distributions"`
}

// MatrixRowDTO lists the test case IDs enumerated for one distribution
type MatrixRowDTO struct {
	Distribution string   `json:"distribution" yaml:"distribution"`
	Perspectives []string `json:"perspectives" yaml:"perspectives"`
}

// DistributionDTO represents a distribution and how many perspectives it ships
type DistributionDTO struct {
	Name         string `json:"name" yaml:"name"`
	Perspectives int    `json:"perspectives" yaml:"perspectives"`
}

// FromDomainPerspective converts a domain perspective to a DTO
func FromDomainPerspective(p perspective.Perspective) PerspectiveDTO {
	dists := p.Distributions()
	names := make([]string, len(dists))
	for i, d := range dists {
		names[i] = d.String()
	}

	pageObject := ""
	if t := p.PageObject(); t != nil {
		pageObject = t.Name()
	}

	return PerspectiveDTO{
		ID:            p.ID(),
		Name:          p.Name(),
		Menu:          p.Menu(),
		PageObject:    pageObject,
		Distributions: names,
	}
}

// FromDomainPerspectives converts a slice of domain perspectives to DTOs
func FromDomainPerspectives(ps []perspective.Perspective) []PerspectiveDTO {
	dtos := make([]PerspectiveDTO, len(ps))
	for i, p := range ps {
		dtos[i] = FromDomainPerspective(p)
	}
	return dtos
}

// NewMatrixRow builds the matrix row for d from its ordered perspectives
func NewMatrixRow(d distribution.Distribution, ps []perspective.Perspective) MatrixRowDTO {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID()
	}
	return MatrixRowDTO{
		Distribution: d.String(),
		Perspectives: ids,
	}
}
