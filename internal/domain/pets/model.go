package pets

// Gender es la forma canónica del género, sin importar el vocabulario de entrada.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Species es la forma canónica de la especie. Todo lo que no es perro o gato
// cae en SpeciesOther y se compara por su texto original.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// AgeBracket es un rango de edad derivado, usado solo para filtrar.
// @Enum young, 1-3, 4-7, 8+
type AgeBracket string

const (
	BracketAny   AgeBracket = ""
	BracketYoung AgeBracket = "young"
	Bracket1To3  AgeBracket = "1-3"
	Bracket4To7  AgeBracket = "4-7"
	Bracket8Plus AgeBracket = "8+"
)

// AllBrackets en el orden en que se muestran como opciones de filtro.
var AllBrackets = []AgeBracket{BracketYoung, Bracket1To3, Bracket4To7, Bracket8Plus}

// Pet es un registro inmutable del catálogo. La edad nunca se guarda:
// se deriva con Age(p, now).
type Pet struct {
	ID          string
	FirstName   string
	BirthYear   int
	AnimalType  string // texto libre tal como viene del catálogo
	Gender      string // texto libre; ver NormalizeGender
	Description string
	PictureURL  string
}
