// Package files groups the sub-packages that move tables between CSV files
// and memory.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - loader: reads every CSV file in a directory into a csvkit.FileCollection
//   - writer: writes one table to a CSV file, creating the folder if needed
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/csvkit/internal/files/loader"
//	    "github.com/vvka-141/csvkit/internal/files/writer"
//	)
//
//	tables, err := loader.NewLoader(logger).LoadDirectory("./data")
//	if err != nil {
//	    return err
//	}
//	err = writer.NewWriter(logger).WriteCSV(tables["sales"], "./out", "sales.csv")
package files
