package floatingip

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"

	"github.com/younsl/cloudctl/internal/models"
)

// Item is one record projected for display
type Item struct {
	Columns []string
	Values  []interface{}
}

// Attributes the network service returns that are never displayed
var hiddenNetworkAttrs = mapset.NewSet("location")

// List columns and their headers, per backend
var (
	networkListColumns = []string{"id", "floating_ip_address", "fixed_ip_address", "port_id", "floating_network_id", "project_id"}
	networkListHeaders = []string{"ID", "Floating IP Address", "Fixed IP Address", "Port", "Floating Network", "Project"}
	networkLongColumns = []string{"router_id", "status", "description"}
	networkLongHeaders = []string{"Router", "Status", "Description"}

	computeListColumns = []string{"id", "ip", "fixed_ip", "instance_id", "pool"}
	computeListHeaders = []string{"ID", "Floating IP Address", "Fixed IP Address", "Server", "Pool"}
)

// showColumns returns the sorted display columns for a record with the given
// attribute keys. tenant_id is always shown as project_id.
func showColumns(keys []string, hidden mapset.Set[string]) []string {
	columns := lo.Map(keys, func(key string, _ int) string {
		if key == "tenant_id" {
			return "project_id"
		}
		return key
	})
	columns = lo.Reject(lo.Uniq(columns), func(column string, _ int) bool {
		return hidden.Contains(column)
	})
	slices.Sort(columns)
	return columns
}

// projectItem builds an Item from attrs using the given columns
func projectItem(attrs models.Attrs, columns []string) *Item {
	return &Item{
		Columns: columns,
		Values:  projectRow(attrs, columns),
	}
}

func projectRow(attrs models.Attrs, columns []string) []interface{} {
	return lo.Map(columns, func(column string, _ int) interface{} {
		return attrs.Get(column)
	})
}

func networkItem(fip *models.FloatingIP) *Item {
	return projectItem(fip.Attributes, showColumns(lo.Keys(fip.Attributes), hiddenNetworkAttrs))
}

func computeItem(fip *models.ComputeFloatingIP) *Item {
	attrs := models.Attrs(fip.Info)
	return projectItem(attrs, showColumns(lo.Keys(attrs), mapset.NewSet[string]()))
}
