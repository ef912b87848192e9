// shelfd - in-memory book catalog service
package main

import (
	"github.com/shelfd/shelfd/pkg/cli"
)

func main() {
	cli.Execute()
}
