package helloworld

var (
	Version = "1.0.0"
	Build   = ""
	GitSHA  = ""
)

func FullVersion() string {
	lastPart := "b" + Build
	if Build == "" {
		lastPart = "dev"
		if len(GitSHA) >= 8 {
			lastPart += GitSHA[:8]
		}
	}

	return Version + "+" + lastPart
}
