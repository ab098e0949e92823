package render

// Package render defines the page rendering capability used by the viewer and
// its backends: MuPDF rasterization (github.com/gen2brain/go-fitz), a pure-Go
// text preview (github.com/ledongthuc/pdf), and a TTL cache of rendered pages
// (github.com/patrickmn/go-cache). Documents are read through Fyne storage.
