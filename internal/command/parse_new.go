package command

import "goTable/internal/schema"

// parseNew parses:
//
//	new name:type,name:type,...
func parseNew(arg string) (Command, error) {
	s, err := schema.Parse(arg)
	if err != nil {
		return nil, widen(err)
	}
	return &NewSchema{Schema: s}, nil
}
