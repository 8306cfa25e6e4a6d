package locale

import "golang.org/x/text/language"

var german = &Data{
	Tag: language.German,
	Words: []string{
		"rustikal", "elegant", "handgefertigt", "edel", "schlank",
		"praktisch", "modern", "klassisch", "robust", "leicht",
		"stahl", "holz", "granit", "gummi", "baumwolle",
		"stuhl", "tisch", "lampe", "tastatur", "flasche",
	},
	FirstNames: []string{
		"Lukas", "Anna", "Leon", "Lena", "Paul",
		"Emma", "Jonas", "Mia", "Finn", "Sofia",
		"Maximilian", "Hannah", "Felix", "Laura", "Moritz",
	},
	LastNames: []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber",
		"Meyer", "Wagner", "Becker", "Schulz", "Hoffmann",
		"Koch", "Bauer", "Richter", "Klein", "Wolf",
	},
	Domains: []string{
		"beispiel.de", "beispiel.org", "post.test", "firma.test",
	},
	Cities: []string{
		"Berlin", "Hamburg", "München", "Köln", "Frankfurt",
		"Stuttgart", "Düsseldorf", "Leipzig", "Dresden", "Bremen",
	},
	Countries: []string{
		"Deutschland", "Österreich", "Schweiz", "Luxemburg", "Liechtenstein",
	},
}
