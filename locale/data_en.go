package locale

import "golang.org/x/text/language"

var english = &Data{
	Tag: language.English,
	Words: []string{
		"rustic", "elegant", "handcrafted", "refined", "sleek",
		"gorgeous", "practical", "modern", "vintage", "premium",
		"steel", "wooden", "granite", "rubber", "cotton",
		"chair", "table", "lamp", "keyboard", "bottle",
		"river", "mountain", "harbor", "meadow", "orchard",
	},
	FirstNames: []string{
		"James", "Mary", "Robert", "Patricia", "John",
		"Jennifer", "Michael", "Linda", "David", "Elizabeth",
		"William", "Barbara", "Richard", "Susan", "Joseph",
		"Jessica", "Thomas", "Sarah", "Charles", "Karen",
	},
	LastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin",
	},
	Domains: []string{
		"example.com", "example.org", "example.net",
		"mail.test", "inbox.test", "corp.test",
	},
	Cities: []string{
		"Springfield", "Riverton", "Fairview", "Kingston", "Salem",
		"Georgetown", "Arlington", "Ashland", "Burlington", "Clinton",
	},
	Countries: []string{
		"United States", "United Kingdom", "Canada", "Australia",
		"Ireland", "New Zealand", "South Africa", "India",
	},
}
