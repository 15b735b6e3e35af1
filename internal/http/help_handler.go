package http

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"psy-match/internal/ranking"
)

var (
	availableSpecializations = []string{
		"Anxiety",
		"Depression",
		"Relationships",
		"Family Therapy",
		"Trauma",
		"PTSD",
		"Addiction",
		"Eating Disorders",
		"Bipolar Disorder",
		"OCD",
		"ADHD",
		"Grief Counseling",
		"Stress Management",
		"Career Counseling",
		"Couples Therapy",
		"Child Psychology",
		"Adolescent Psychology",
	}
	availableLanguages = []string{"Ukrainian", "English", "Russian", "Polish", "German", "French", "Spanish"}
	availableGenders   = []string{"Male", "Female", "Any"}
)

var criterionDescriptions = map[ranking.Criterion]string{
	ranking.CriterionPrice:    "How well the price fits your budget",
	ranking.CriterionCategory: "How well the specializations match your issues",
	ranking.CriterionLanguage: "Shared language",
	ranking.CriterionGender:   "Match with your gender preference",
	ranking.CriterionFormat:   "Online and in-person availability",
}

// HelpHandler sirve datos de referencia para los formularios del cliente.
type HelpHandler struct {
	weights ranking.Weights
}

func NewHelpHandler(weights ranking.Weights) *HelpHandler {
	return &HelpHandler{weights: weights}
}

func (h *HelpHandler) Specializations(c *gin.Context) {
	c.JSON(http.StatusOK, availableSpecializations)
}

func (h *HelpHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, availableLanguages)
}

func (h *HelpHandler) Genders(c *gin.Context) {
	c.JSON(http.StatusOK, availableGenders)
}

// Topsis maneja GET /help/topsis: criterios con los pesos vigentes en porcentaje.
func (h *HelpHandler) Topsis(c *gin.Context) {
	var total float64
	for _, w := range h.weights {
		total += w
	}

	criteria := make([]gin.H, 0, ranking.NumCriteria)
	for i, w := range h.weights {
		crit := ranking.Criterion(i)
		share := 0.0
		if total > 0 {
			share = w / total * 100
		}
		criteria = append(criteria, gin.H{
			"name":        crit.String(),
			"weight":      fmt.Sprintf("%d%%", int(math.Round(share))),
			"description": criterionDescriptions[crit],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"name":        "TOPSIS (Technique for Order Preference by Similarity to Ideal Solution)",
		"description": "Multi-criteria decision method used to find the best fitting specialist",
		"criteria":    criteria,
		"how_it_works": []string{
			"1. We analyse your needs and preferences",
			"2. Every specialist is scored on each criterion",
			"3. We compute the distance to the ideal and the worst option",
			"4. Specialists are ranked by relevance (0-100%)",
		},
		"bands": []gin.H{
			{"band": ranking.BandExcellent, "min_score": 0.8, "description": "80%+ excellent match"},
			{"band": ranking.BandGood, "min_score": 0.6, "description": "60-80% good match"},
			{"band": ranking.BandPartial, "min_score": 0.0, "description": "below 60% partial match"},
		},
	})
}
