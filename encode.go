package crowdfund

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists both stores as whole-file JSON documents:
//   - accounts: one JSON object keyed by email,
//   - projects: one JSON array in ledger order.
// There is no incremental write: every save re-encodes the full store.

// DecodeAccounts reads the accounts document from r. An empty input yields
// an empty registry.
func DecodeAccounts(r io.Reader) (*Registry, error) {
	registry := NewRegistry()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&registry.accounts); err != nil {
		if err == io.EOF {
			return registry, nil
		}
		return nil, fmt.Errorf("could not decode accounts: %w", err)
	}
	if registry.accounts == nil { // the document was JSON null
		registry.accounts = make(map[string]Account)
	}
	return registry, nil
}

// EncodeAccounts writes the accounts document to w. Map keys are emitted
// in sorted order, so the output is canonical.
func EncodeAccounts(w io.Writer, registry *Registry) error {
	data, err := json.Marshal(registry.accounts)
	if err != nil {
		return fmt.Errorf("could not encode accounts: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write accounts: %w", err)
	}
	return nil
}

// DecodeProjects reads the projects document from r. An empty input yields
// an empty ledger.
func DecodeProjects(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ledger.projects); err != nil {
		if err == io.EOF {
			return ledger, nil
		}
		return nil, fmt.Errorf("could not decode projects: %w", err)
	}
	if ledger.projects == nil { // the document was JSON null
		ledger.projects = make([]Project, 0)
	}
	return ledger, nil
}

// EncodeProjects writes the projects document to w, preserving ledger
// order and the fixed field order of each project.
func EncodeProjects(w io.Writer, ledger *Ledger) error {
	data, err := json.Marshal(ledger.projects)
	if err != nil {
		return fmt.Errorf("could not encode projects: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write projects: %w", err)
	}
	return nil
}
