package seeder

import "ecomatch_backend/internal/models"

// bundeslaender is the fixed set of German states. Regions below the
// state level are maintained for Hessen only; the remaining states
// start without subdivisions.
var bundeslaender = map[string][]string{
	"Baden-Württemberg":      nil,
	"Bayern":                 nil,
	"Berlin":                 nil,
	"Brandenburg":            nil,
	"Bremen":                 nil,
	"Hamburg":                nil,
	"Hessen":                 {"Nordhessen", "Mittelhessen", "Osthessen", "Rhein-Main", "Südhessen"},
	"Mecklenburg-Vorpommern": nil,
	"Niedersachsen":          nil,
	"Nordrhein-Westfalen":    nil,
	"Rheinland-Pfalz":        nil,
	"Saarland":               nil,
	"Sachsen":                nil,
	"Sachsen-Anhalt":         nil,
	"Schleswig-Holstein":     nil,
	"Thüringen":              nil,
}

var serviceTypes = []models.ServiceType{
	{Name: "Solaranlagen", Category: "Energie"},
	{Name: "Photovoltaik", Category: "Energie"},
	{Name: "Solarthermie", Category: "Energie"},
	{Name: "Wärmepumpe", Category: "Heizung"},
	{Name: "Heizungsmodernisierung", Category: "Heizung"},
	{Name: "Energieberatung", Category: "Beratung"},
	{Name: "Dämmung", Category: "Sanierung"},
	{Name: "Fenster und Türen", Category: "Sanierung"},
	{Name: "Nachhaltige Projekte", Category: "Beratung"},
}
