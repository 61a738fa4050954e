package synth

import "fmt"

// City is the representative location sampled once per generation call.
type City struct {
	Country string
	Region  string
	Name    string
	Lat     float64
	Lon     float64
}

type geoContext struct {
	countryName  string
	countryCode  string
	currency     string
	phonePrefix  string
	postalFormat string
	cities       []City
	provinces    []string
	streets      []string
}

// geoContexts keys the locale-aware sub-resolvers. "global" samples across
// every other context.
var geoContexts = map[string]geoContext{
	"ecuador": {
		countryName:  "Ecuador",
		countryCode:  "EC",
		currency:     "USD",
		phonePrefix:  "+593",
		postalFormat: "EC######",
		cities: []City{
			{Country: "EC", Region: "Pichincha", Name: "Quito", Lat: -0.1807, Lon: -78.4678},
			{Country: "EC", Region: "Guayas", Name: "Guayaquil", Lat: -2.1709, Lon: -79.9224},
			{Country: "EC", Region: "Azuay", Name: "Cuenca", Lat: -2.9001, Lon: -79.0059},
			{Country: "EC", Region: "Tungurahua", Name: "Ambato", Lat: -1.2417, Lon: -78.6197},
			{Country: "EC", Region: "Manabi", Name: "Manta", Lat: -0.9677, Lon: -80.7089},
		},
		provinces: []string{"Pichincha", "Guayas", "Azuay", "Manabi", "Tungurahua", "El Oro", "Loja", "Imbabura"},
		streets:   []string{"Av. Amazonas", "Av. 10 de Agosto", "Av. Shyris", "Calle Sucre", "Av. Naciones Unidas", "Av. Republica"},
	},
	"colombia": {
		countryName:  "Colombia",
		countryCode:  "CO",
		currency:     "COP",
		phonePrefix:  "+57",
		postalFormat: "######",
		cities: []City{
			{Country: "CO", Region: "Cundinamarca", Name: "Bogota", Lat: 4.711, Lon: -74.0721},
			{Country: "CO", Region: "Antioquia", Name: "Medellin", Lat: 6.2442, Lon: -75.5812},
			{Country: "CO", Region: "Valle del Cauca", Name: "Cali", Lat: 3.4516, Lon: -76.532},
			{Country: "CO", Region: "Atlantico", Name: "Barranquilla", Lat: 10.9685, Lon: -74.7813},
		},
		provinces: []string{"Cundinamarca", "Antioquia", "Valle del Cauca", "Atlantico", "Bolivar", "Santander"},
		streets:   []string{"Carrera 7", "Avenida Caracas", "Calle 72", "Carrera 15", "Avenida Boyaca", "Calle 26"},
	},
	"mexico": {
		countryName:  "Mexico",
		countryCode:  "MX",
		currency:     "MXN",
		phonePrefix:  "+52",
		postalFormat: "#####",
		cities: []City{
			{Country: "MX", Region: "CDMX", Name: "Ciudad de Mexico", Lat: 19.4326, Lon: -99.1332},
			{Country: "MX", Region: "Jalisco", Name: "Guadalajara", Lat: 20.6597, Lon: -103.3496},
			{Country: "MX", Region: "Nuevo Leon", Name: "Monterrey", Lat: 25.6866, Lon: -100.3161},
			{Country: "MX", Region: "Puebla", Name: "Puebla", Lat: 19.0414, Lon: -98.2063},
		},
		provinces: []string{"CDMX", "Jalisco", "Nuevo Leon", "Puebla", "Yucatan", "Sonora"},
		streets:   []string{"Av. Insurgentes", "Paseo de la Reforma", "Av. Juarez", "Calle Madero", "Av. Chapultepec"},
	},
	"spain": {
		countryName:  "Espana",
		countryCode:  "ES",
		currency:     "EUR",
		phonePrefix:  "+34",
		postalFormat: "#####",
		cities: []City{
			{Country: "ES", Region: "Madrid", Name: "Madrid", Lat: 40.4168, Lon: -3.7038},
			{Country: "ES", Region: "Cataluna", Name: "Barcelona", Lat: 41.3874, Lon: 2.1686},
			{Country: "ES", Region: "Andalucia", Name: "Sevilla", Lat: 37.3891, Lon: -5.9845},
			{Country: "ES", Region: "Valencia", Name: "Valencia", Lat: 39.4699, Lon: -0.3763},
		},
		provinces: []string{"Madrid", "Cataluna", "Andalucia", "Valencia", "Galicia", "Pais Vasco"},
		streets:   []string{"Gran Via", "Calle Alcala", "Paseo de Gracia", "Calle Serrano", "Rambla Catalunya"},
	},
	"usa": {
		countryName:  "United States",
		countryCode:  "US",
		currency:     "USD",
		phonePrefix:  "+1",
		postalFormat: "#####",
		cities: []City{
			{Country: "US", Region: "CA", Name: "San Francisco", Lat: 37.7749, Lon: -122.4194},
			{Country: "US", Region: "NY", Name: "New York", Lat: 40.7128, Lon: -74.006},
			{Country: "US", Region: "TX", Name: "Austin", Lat: 30.2672, Lon: -97.7431},
			{Country: "US", Region: "IL", Name: "Chicago", Lat: 41.8781, Lon: -87.6298},
		},
		provinces: []string{"CA", "NY", "TX", "IL", "WA", "FL"},
		streets:   []string{"Main Street", "Market Street", "Broadway", "5th Avenue", "Lincoln Avenue"},
	},
}

// geoKeys holds a stable iteration order so "global" sampling is seed-stable.
var geoKeys = []string{"colombia", "ecuador", "mexico", "spain", "usa"}

func (c *Context) geo() geoContext {
	if g, ok := geoContexts[c.Geography]; ok {
		return g
	}
	// global or unknown: pick one context for this draw
	return geoContexts[c.choice(geoKeys)]
}

// SampleCity picks the representative city for a generation call.
func (c *Context) SampleCity() City {
	g := c.geo()
	return g.cities[c.Rand.Intn(len(g.cities))]
}

// Geographies lists the supported geography keys, "global" excluded.
func Geographies() []string {
	return append([]string(nil), geoKeys...)
}

// KnownGeography reports whether a geography key is part of the fixed set.
func KnownGeography(key string) bool {
	if key == "" || key == "global" {
		return true
	}
	_, ok := geoContexts[key]
	return ok
}

func (c *Context) cityName() string {
	return c.SampleCity().Name
}

func (c *Context) province() string {
	g := c.geo()
	return c.choice(g.provinces)
}

func (c *Context) country() string {
	return c.geo().countryName
}

func (c *Context) address() string {
	g := c.geo()
	return fmt.Sprintf("%s %d", c.choice(g.streets), c.randInt(1, 999))
}

func (c *Context) phone() string {
	g := c.geo()
	switch g.phonePrefix {
	case "+593":
		return fmt.Sprintf("+593-%d-%d-%d", c.randInt(90, 99), c.randInt(100, 999), c.randInt(1000, 9999))
	case "+57":
		return fmt.Sprintf("+57-%d-%d-%d", c.randInt(300, 350), c.randInt(100, 999), c.randInt(1000, 9999))
	case "+52":
		return fmt.Sprintf("+52-%d-%d-%d", c.randInt(55, 99), c.randInt(1000, 9999), c.randInt(1000, 9999))
	case "+34":
		return fmt.Sprintf("+34-%d-%d-%d", c.randInt(600, 799), c.randInt(100, 999), c.randInt(100, 999))
	default:
		return fmt.Sprintf("+1-%d-%d-%d", c.randInt(200, 999), c.randInt(200, 999), c.randInt(1000, 9999))
	}
}

func (c *Context) postalCode() string {
	g := c.geo()
	switch g.postalFormat {
	case "EC######":
		return fmt.Sprintf("EC%d", c.randInt(100000, 999999))
	case "######":
		return fmt.Sprintf("%d", c.randInt(100000, 999999))
	default:
		return fmt.Sprintf("%05d", c.randInt(10000, 99999))
	}
}

func (c *Context) currencyCode() string {
	if g, ok := geoContexts[c.Geography]; ok {
		return g.currency
	}
	return "USD"
}
