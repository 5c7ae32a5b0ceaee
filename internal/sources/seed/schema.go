package seed

// Entry is a single link in the seed file
type Entry struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// File is the root structure of the YAML seed file. Links are imported
// in file order, which becomes their display order.
type File struct {
	Links []Entry `yaml:"links"`
}
