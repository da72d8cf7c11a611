// metrics.go
//
// Paint store inventory and point-of-sale service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of paintstore.
// paintstore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// paintstore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with paintstore.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"errors"

	"github.com/localnerve/paintstore/internal/models"
	"github.com/localnerve/paintstore/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	salesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paintstore",
		Name:      "sales_recorded_total",
		Help:      "Sell transactions committed.",
	})
	unitsSold = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paintstore",
		Name:      "units_sold_total",
		Help:      "Units removed from stock by committed sales.",
	})
	sellsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paintstore",
		Name:      "sells_rejected_total",
		Help:      "Sell requests rolled back, by error type.",
	}, []string{"type"})
)

func recordSale(sale models.Sale) {
	salesRecorded.Inc()
	unitsSold.Add(float64(sale.Quantity))
}

func recordRejectedSell(err error) {
	reason := types.TypeTransaction
	var custom *types.CustomError
	if errors.As(err, &custom) {
		reason = custom.Type
	}
	sellsRejected.WithLabelValues(reason).Inc()
}
