package templates

var builtinInfo = map[ID]Info{
	Modern:     {ID: Modern, Name: "Modern", Description: "Clean sans-serif layout with a blue accent rule."},
	Classic:    {ID: Classic, Name: "Classic", Description: "Centered serif header with ruled section titles."},
	Minimalist: {ID: Minimalist, Name: "Minimalist", Description: "Light typography and generous whitespace."},
	Creative:   {ID: Creative, Name: "Creative", Description: "Colour header band with monogram and skill pills."},
	Executive:  {ID: Executive, Name: "Executive", Description: "Navy and gold layout for senior profiles."},
}

var builtinBlocks = map[ID]string{
	Modern:     modernBlocks,
	Classic:    classicBlocks,
	Minimalist: minimalistBlocks,
	Creative:   creativeBlocks,
	Executive:  executiveBlocks,
}
