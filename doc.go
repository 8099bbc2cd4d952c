// Package evalgo provides classification evaluation metrics for Go,
// designed for model-evaluation pipelines and backend inference services.
//
// evalgo offers a scikit-learn-like metrics API built on gonum matrices,
// making it easy for engineers familiar with Python's evaluation stack to
// score classification models in Go.
//
// # Features
//
// - Log loss (cross-entropy) for binary and multiclass problems
// - Numerically safe: machine-epsilon stability floor instead of -Inf
// - Mean and sum aggregation with a single option
// - Rank-based AUC, accuracy, and classification error
// - Robust Error Handling: structured errors with stack traces
// - Well Tested: table-driven tests and benchmarks for every metric
//
// # Installation
//
// Install evalgo using go get:
//
//	go get github.com/sciml-go/evalgo
//
// # Quick Start
//
// Here's a simple example of scoring multiclass probabilities:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/sciml-go/evalgo/metrics"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // True class indices for two observations over levels {A, B}
//	    yTrue := mat.NewVecDense(2, []float64{0, 1})
//
//	    // Predicted probability distribution per row
//	    proba := mat.NewDense(2, 2, []float64{
//	        0.9, 0.1,
//	        0.2, 0.8,
//	    })
//
//	    loss, err := metrics.LogLoss(yTrue, proba)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("mean log loss:", loss)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - metrics: Classification metrics (LogLoss, AUC, Accuracy)
//   - preprocessing: Label encoding utilities (LabelBinarizer)
//   - core/model: Core interfaces and base types
//   - pkg/errors: Structured errors and warnings
//   - pkg/log: Structured logging interface and backends
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/sciml-go/evalgo
//
// # License
//
// evalgo is released under the MIT License.
package evalgo
