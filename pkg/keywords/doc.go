// Package keywords classifies files by case-insensitive substring match of
// their name against an ordered keyword map.
//
// The keyword file is JSON or YAML with a single required "folders" mapping:
//
//	{
//	    "folders": {
//	        "invoice": "/home/me/Finance/Invoices",
//	        "receipt": "/home/me/Finance/Receipts"
//	    }
//	}
//
// Keys are matched in the order they appear in the file. The first keyword
// contained in the lower-cased file name wins, so "invoice_receipt.pdf" goes
// to the invoice folder above. Place more specific keywords first.
//
// Keyword mode has no default destination: files matching no keyword stay
// where they are.
package keywords
