package hero

import "strings"

// Hero - запись коллекции героев
type Hero struct {
	ID   int    `json:"id,omitempty" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Filter - параметры выборки списка героев. HasID отличает явный ID (в том числе 0) от его отсутствия
type Filter struct {
	ID    int
	HasID bool
	Name  string
}

// MockHeroes - начальный набор героев для пустого хранилища
var MockHeroes = []Hero{
	{ID: 12, Name: "Dr. Nice"},
	{ID: 13, Name: "Bombasto"},
	{ID: 14, Name: "Celeritas"},
	{ID: 15, Name: "Magneta"},
	{ID: 16, Name: "RubberMan"},
	{ID: 17, Name: "Dynama"},
	{ID: 18, Name: "Dr. IQ"},
	{ID: 19, Name: "Magma"},
	{ID: 20, Name: "Tornado"},
}

// MatchesName проверяет, содержит ли имя героя подстроку (без учета регистра)
func (h Hero) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(h.Name), strings.ToLower(term))
}
