package version

import "fmt"

var (
	// Version はビルド時に -ldflags で設定されるバージョン
	Version = "dev"
	// Commit はビルド時に設定されるGitコミットハッシュ
	Commit = "none"
	// Date はビルド日時
	Date = "unknown"
)

// Info はバージョン情報を保持する構造体
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get は現在のバージョン情報を返す
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

// String は "gh-labels <version> (<commit>, <date>)" 形式の文字列を返す
func (i Info) String() string {
	return fmt.Sprintf("gh-labels %s (%s, %s)", i.Version, i.Commit, i.Date)
}
