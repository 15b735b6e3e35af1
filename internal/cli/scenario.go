package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"psy-match/internal/domain"
)

// Scenario es un pool de especialistas mas un perfil, leidos de un archivo TOML.
type Scenario struct {
	Client      scenarioProfile      `toml:"profile"`
	Specialists []scenarioSpecialist `toml:"specialists"`
}

type scenarioProfile struct {
	Budget            float64  `toml:"budget"`
	Issues            []string `toml:"issues"`
	Issue             string   `toml:"issue"`
	PreferredLanguage string   `toml:"preferred_language"`
	PreferredGender   string   `toml:"preferred_gender"`
	PreferOnline      bool     `toml:"prefer_online"`
	PreferOffline     bool     `toml:"prefer_offline"`
}

type scenarioSpecialist struct {
	ID              string   `toml:"id"`
	FirstName       string   `toml:"first_name"`
	LastName        string   `toml:"last_name"`
	Specializations []string `toml:"specializations"`
	Price           float64  `toml:"price"`
	Online          bool     `toml:"online"`
	Offline         bool     `toml:"offline"`
	Gender          string   `toml:"gender"`
	Language        string   `toml:"language"`
	Inactive        bool     `toml:"inactive"`
}

// LoadScenario lee y valida un escenario.
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return Scenario{}, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Scenario{}, fmt.Errorf("scenario %s: unknown key %q", path, undecoded[0].String())
	}
	seen := make(map[string]bool, len(sc.Specialists))
	for i, s := range sc.Specialists {
		if s.ID == "" {
			return Scenario{}, fmt.Errorf("scenario %s: specialist #%d has no id", path, i+1)
		}
		if seen[s.ID] {
			return Scenario{}, fmt.Errorf("scenario %s: duplicate specialist id %q", path, s.ID)
		}
		if s.Price < 0 {
			return Scenario{}, fmt.Errorf("scenario %s: specialist %q has negative price", path, s.ID)
		}
		seen[s.ID] = true
	}
	return sc, nil
}

// Profile devuelve el perfil normalizado; issue es la forma legacy separada por comas.
func (sc Scenario) Profile() domain.PreferenceProfile {
	issues := sc.Client.Issues
	if len(domain.NormalizeLabels(issues)) == 0 {
		issues = domain.SplitIssues(sc.Client.Issue)
	}
	return domain.Client{
		Budget:            sc.Client.Budget,
		Issues:            issues,
		PreferredLanguage: sc.Client.PreferredLanguage,
		PreferredGender:   sc.Client.PreferredGender,
		PreferOnline:      sc.Client.PreferOnline,
		PreferOffline:     sc.Client.PreferOffline,
	}.Preferences()
}

// Pool devuelve los especialistas activos en el orden del archivo.
func (sc Scenario) Pool() []domain.Specialist {
	pool := make([]domain.Specialist, 0, len(sc.Specialists))
	for _, s := range sc.Specialists {
		if s.Inactive {
			continue
		}
		pool = append(pool, domain.Specialist{
			ID:              s.ID,
			FirstName:       s.FirstName,
			LastName:        s.LastName,
			Specializations: domain.NormalizeLabels(s.Specializations),
			Price:           s.Price,
			Online:          s.Online,
			Offline:         s.Offline,
			Gender:          s.Gender,
			Language:        s.Language,
			IsActive:        true,
		})
	}
	return pool
}
