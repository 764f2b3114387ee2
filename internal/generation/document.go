package generation

import "fmt"

// PreviewCSP confines a preview: scripts may run, nothing else is trusted.
const PreviewCSP = "sandbox allow-scripts"

const documentFormat = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
%s
</body>
</html>
`

// WrapDocument embeds generated markup in a standalone page that loads Tailwind.
// The content is inserted unmodified; isolation comes from PreviewCSP.
func WrapDocument(content string) string {
	return fmt.Sprintf(documentFormat, content)
}
