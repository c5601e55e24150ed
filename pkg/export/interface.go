/*Package export writes one-way dumps of the transaction collection.

The local ledger remains the source of truth; a sink never reads back.
*/
package export

import (
	"github.com/voidshard/pocketledger/pkg/domain"
)

type Sink interface {
	Write([]*domain.Transaction) error
}
