// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sections

import (
	"rooters/internal/icons"
	"rooters/internal/models"
)

type ProcessView struct {
	Heading     string
	Description string
	Steps       []StepView
}

type StepView struct {
	Number      int
	Title       string
	Description string
	Icon        string
}

// Process resolves the numbered "how it works" steps.
func Process(p *models.ProcessSectionData) *ProcessView {
	if p == nil {
		return nil
	}
	var steps []StepView
	for _, s := range p.Steps {
		if s.Title == "" {
			continue
		}
		steps = append(steps, StepView{
			Number:      len(steps) + 1,
			Title:       s.Title,
			Description: s.Description,
			Icon:        icons.Resolve(s.Icon),
		})
	}
	if len(steps) == 0 {
		return nil
	}
	return &ProcessView{
		Heading:     orDefault(p.Heading, processDefaults.Heading),
		Description: p.Description,
		Steps:       steps,
	}
}

type StatsView struct {
	Heading     string
	Description string
	Stats       []StatView
}

type StatView struct {
	Value string
	Label string
	Icon  string
}

// Stats resolves the figures band. Stats without a value are dropped.
func Stats(s *models.StatsSectionData) *StatsView {
	if s == nil {
		return nil
	}
	var stats []StatView
	for _, st := range s.Stats {
		if st.Value == "" {
			continue
		}
		stats = append(stats, StatView{Value: st.Value, Label: st.Label, Icon: icons.Resolve(st.Icon)})
	}
	if len(stats) == 0 {
		return nil
	}
	return &StatsView{Heading: s.Heading, Description: s.Description, Stats: stats}
}

type ServiceAreasView struct {
	Kicker      string
	Heading     string
	Description string
	Areas       []models.ServiceArea
}

// ServiceAreas resolves the service area grid from the page section, or,
// when the page has none, from the site-wide list.
func ServiceAreas(s *models.ServiceAreasSection, fallback []models.ServiceArea) *ServiceAreasView {
	var heading, description string
	areas := fallback
	if s != nil && len(s.Areas) > 0 {
		heading, description, areas = s.Heading, s.Description, s.Areas
	}

	var kept []models.ServiceArea
	for _, a := range areas {
		if a.City != "" {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &ServiceAreasView{
		Kicker:      serviceAreaDefaults.Kicker,
		Heading:     orDefault(heading, serviceAreaDefaults.Heading),
		Description: orDefault(description, serviceAreaDefaults.Description),
		Areas:       kept,
	}
}

type TeamView struct {
	Heading     string
	Description string
	Members     []MemberView
}

type MemberView struct {
	Name     string
	Role     string
	Bio      string
	Image    *models.Image
	ImageAlt string
}

// Team resolves the team grid.
func Team(t *models.TeamSection) *TeamView {
	if t == nil {
		return nil
	}
	var members []MemberView
	for _, m := range t.Members {
		if m.Name == "" {
			continue
		}
		mv := MemberView{Name: m.Name, Role: m.Role, Bio: m.Bio}
		if m.Image.HasAsset() {
			mv.Image = m.Image
			mv.ImageAlt = m.Image.AltOr(m.Name)
		}
		members = append(members, mv)
	}
	if len(members) == 0 {
		return nil
	}
	return &TeamView{
		Heading:     orDefault(t.Heading, teamDefaults.Heading),
		Description: orDefault(t.Description, teamDefaults.Description),
		Members:     members,
	}
}
