package catalog

// ObjectDecl declares a named finite carrier by listing its element labels
// in index order.
type ObjectDecl struct {
	Name     string   `toml:"name"`
	Elements []string `toml:"elements"`
}

// ArrowDecl declares a named arrow between two declared objects. Map lists
// the codomain index assigned to each domain index.
type ArrowDecl struct {
	Name string `toml:"name"`
	Dom  string `toml:"dom"`
	Cod  string `toml:"cod"`
	Map  []int  `toml:"map"`
}

// EdgeDecl is one edge of a diagram: a declared arrow between two of the
// diagram's object positions.
type EdgeDecl struct {
	Src   int    `toml:"src"`
	Dst   int    `toml:"dst"`
	Arrow string `toml:"arrow"`
}

// DiagramDecl declares a named diagram over declared objects.
type DiagramDecl struct {
	Name    string     `toml:"name"`
	Objects []string   `toml:"objects"`
	Edges   []EdgeDecl `toml:"edge"`
}

// file is the parsed representation of one workspace *.toml file.
type file struct {
	Objects  []ObjectDecl  `toml:"object"`
	Arrows   []ArrowDecl   `toml:"arrow"`
	Diagrams []DiagramDecl `toml:"diagram"`
}
