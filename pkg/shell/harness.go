package shell

import (
	"context"
	"fmt"

	"github.com/younsl/cloudctl/pkg/floatingip"
)

// deleteAll deletes targets one at a time. A failed target is logged and
// the remaining targets are still processed; the command fails at the end if
// any target failed.
func deleteAll(ctx context.Context, env *Env, backend floatingip.Backend, targets []string) error {
	failed := 0
	backend.Delete(ctx, targets, func(target string, err error) bool {
		if err != nil {
			failed++
			env.logEntry().Errorf("Failed to delete floating IP with name or ID '%s': %s", target, err)
		}
		return true
	})

	if failed > 0 {
		return fmt.Errorf("%d of %d floating IPs failed to delete.", failed, len(targets))
	}
	return nil
}
