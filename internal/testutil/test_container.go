//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedOnce      sync.Once
	sharedContainer *MongoDBContainer
	sharedErr       error
)

// GetSharedMongoDB returns the package-wide shared MongoDB container,
// starting it on first use. Pair with SetupTestMainWithMongoDB so the
// container is torn down after the test binary finishes.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedContainer, sharedErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedErr
}

// SetupTestMainWithMongoDB runs the test binary against a shared MongoDB
// container. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if sharedContainer != nil {
		if err := sharedContainer.Cleanup(ctx); err != nil {
			// Docker reaps the container eventually, so only warn.
			fmt.Fprintf(os.Stderr, "warning: mongodb container cleanup failed: %v\n", err)
		}
	}
	return code
}

// SanitizeDBName turns a test name into a valid, unique MongoDB database
// name. Subtests share one container, so uniqueness keeps their data apart.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
