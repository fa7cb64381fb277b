package model

// HeritageSite объект культурного наследия из каталога
type HeritageSite struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Location     string `json:"location" yaml:"location"`
	Description  string `json:"description" yaml:"description"`
	Image        string `json:"image" yaml:"image"`
	YearBuilt    string `json:"year_built" yaml:"year_built"`
	Architect    string `json:"architect" yaml:"architect"`
	Significance string `json:"significance" yaml:"significance"`
	ARAvailable  bool   `json:"ar_available" yaml:"ar_available"`
}
