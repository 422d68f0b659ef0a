package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/similar_products/pkg/validate"
)

// CLI для проверки идентификаторов товаров: по одному id на строку,
// валидные печатаются в stdout, итог — в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input file with one product id per line. If empty, reads from stdin.")
	strict := flag.Bool("strict", false, "exit with code 2 if any id is invalid")
	flag.Parse()

	summary, err := validate.CheckFile(context.Background(), validate.NewProductIDValidator(), *inputPath, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "check ids: %v (%s)\n", err, summary)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "check ids done (%s)\n", summary)
	if *strict && summary.Invalid > 0 {
		os.Exit(2)
	}
}
