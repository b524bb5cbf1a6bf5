// SPDX-License-Identifier: MIT

package builder

// CategoryFn maps a stop ID to its category label. It must be pure.
type CategoryFn func(id int) string

// DefaultCategoryFn cycles categories by id % 3:
// 0 → Bus Stop, 1 → Taxi Stand, 2 → Auto Stand.
func DefaultCategoryFn(id int) string {
	switch id % 3 {
	case 0:
		return CategoryBusStop
	case 1:
		return CategoryTaxiStand
	default:
		return CategoryAutoStand
	}
}
