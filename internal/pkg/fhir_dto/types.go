package fhir_dto

import "time"

type HumanName struct {
	Use    string   `json:"use,omitempty" bson:"use,omitempty"`
	Text   string   `json:"text,omitempty" bson:"text,omitempty"`
	Family string   `json:"family,omitempty" bson:"family,omitempty"`
	Given  []string `json:"given,omitempty" bson:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty" bson:"prefix,omitempty"`
}

type Meta struct {
	VersionId   string    `json:"versionId,omitempty" bson:"versionId,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	Source      string    `json:"source,omitempty" bson:"source,omitempty"`
	Profile     []string  `json:"profile,omitempty" bson:"profile,omitempty"`
	Security    []Coding  `json:"security,omitempty" bson:"security,omitempty"`
	Tag         []Coding  `json:"tag,omitempty" bson:"tag,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty" bson:"system,omitempty"`
	Version string `json:"version,omitempty" bson:"version,omitempty"`
	Code    string `json:"code,omitempty" bson:"code,omitempty"`
	Display string `json:"display,omitempty" bson:"display,omitempty"`
}
