package cloud_test

import (
	"fmt"
	"net/url"
	"time"

	cloud "github.com/gitloom/cloud-go"
)

func ExampleBuild() {
	c, err := cloud.Build("https://app.gitloom.com/api/",
		cloud.WithTimeout(10*time.Second),
		cloud.WithUserAgent("gitloom-desktop/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c
	fmt.Println("client built")
	// Output: client built
}

func ExampleResolveURL() {
	base, _ := url.Parse("https://api.example.com/api/")

	fmt.Println(cloud.ResolveURL(base, "projects.json"))
	// Output: https://api.example.com/api/projects.json
}
