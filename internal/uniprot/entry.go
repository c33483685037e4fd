// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"encoding/json"
	"errors"
)

// Entry is a UniProtKB record, decoded from the REST API's JSON shape.
// Only the fields the enrichment pipeline reads are mapped.
type Entry struct {
	PrimaryAccession   string             `json:"primaryAccession"`
	UniProtKBID        string             `json:"uniProtkbId"`
	ProteinDescription proteinDescription `json:"proteinDescription"`
	CrossReferences    []CrossRef         `json:"uniProtKBCrossReferences"`
}

type proteinDescription struct {
	RecommendedName struct {
		FullName struct {
			Value string `json:"value"`
		} `json:"fullName"`
	} `json:"recommendedName"`
}

// ProteinName returns the recommended full name, or "Unknown" when the
// record carries none.
func (e *Entry) ProteinName() string {
	if name := e.ProteinDescription.RecommendedName.FullName.Value; name != "" {
		return name
	}
	return "Unknown"
}

// CrossRef is one database cross-reference on an entry.
type CrossRef struct {
	Database   string      `json:"database"`
	ID         string      `json:"id"`
	Properties propertyMap `json:"properties"`
}

// propertyMap folds both serializations UniProt uses for cross-reference
// properties, a plain object and a list of key/value pairs, into one map.
type propertyMap map[string]string

func (p *propertyMap) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var values map[string]string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*p = values
		return nil
	case '[':
		var pairs []map[string]string
		if err := json.Unmarshal(data, &pairs); err != nil {
			return err
		}
		values := make(map[string]string)
		for _, pair := range pairs {
			key := pair["key"]
			if key == "" {
				key = pair["property"]
			}
			if key == "" {
				continue
			}
			values[key] = pair["value"]
		}
		*p = values
		return nil
	}
	return errors.New("unknown properties format in UniProt cross-reference")
}

// Domain is a Pfam family annotation on an entry.
type Domain struct {
	ID   string
	Name string
}

// PfamDomains extracts the Pfam cross-references. The family name comes
// from the EntryName property when present.
func (e *Entry) PfamDomains() []Domain {
	var domains []Domain
	for _, xref := range e.CrossReferences {
		if xref.Database != "Pfam" {
			continue
		}
		domains = append(domains, Domain{
			ID:   xref.ID,
			Name: xref.Properties["EntryName"],
		})
	}
	return domains
}
