package model

// Technology is a backend technology label.
type Technology string

const (
	NodeJS   Technology = "node.js"
	Python   Technology = "python"
	Java     Technology = "java"
	CSharp   Technology = "c#"
	PHP      Technology = "php"
	Database Technology = "database"
	API      Technology = "api"
)

// Technologies lists every label in declaration order.
var Technologies = []Technology{NodeJS, Python, Java, CSharp, PHP, Database, API}

// IndicatorSet pairs a technology with the substrings that hint at it.
type IndicatorSet struct {
	Technology Technology
	Indicators []string
}

// IndicatorTable returns the static indicator table in declaration order.
// Each call returns a fresh copy.
func IndicatorTable() []IndicatorSet {
	table := []IndicatorSet{
		{NodeJS, []string{"server.js", "app.js", "index.js", "package.json"}},
		{Python, []string{"app.py", "main.py", "wsgi.py", "requirements.txt", "manage.py"}},
		{Java, []string{"pom.xml", "build.gradle", "application.properties"}},
		{CSharp, []string{"Program.cs", "Startup.cs", ".csproj"}},
		{PHP, []string{"index.php", "composer.json"}},
		{Database, []string{"schema.sql", "migrations", "models"}},
		{API, []string{"routes", "controllers", "endpoints"}},
	}
	return table
}

// PortFileExtensions are the suffixes of files searched for port assignments.
var PortFileExtensions = []string{".js", ".py", ".java", ".properties", ".env", ".yml", ".yaml", ".json"}
