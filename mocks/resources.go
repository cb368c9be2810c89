package mocks

import (
	"fmt"
	"net/url"
	"strings"
)

const blobHostSuffix = ".blob.core.windows.net"

// BlobURI builds a blob URL for account, container and blob.
func BlobURI(account, container, blob string) string {
	return fmt.Sprintf("https://%s%s/%s/%s", account, blobHostSuffix, container, blob)
}

// ResourceTopic returns the ARM resource path used as an Event Grid topic,
// e.g. /subscriptions/{sub}/resourceGroups/{rg}/providers/Microsoft.Storage/storageAccounts/{name}.
func ResourceTopic(subscriptionID, resourceGroup, resourceType, name string) string {
	provider, ok := ResourceProviders[resourceType]
	if !ok {
		provider = DefaultProvider
	}
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s/%s",
		subscriptionID, resourceGroup, provider, resourceType, name)
}

// BlobLocation is a blob URL split into its parts. Empty fields could not be
// derived from the URL.
type BlobLocation struct {
	Account   string
	Container string
	Blob      string
}

// ParseBlobURL splits a blob URL of the form
// https://{account}.blob.core.windows.net/{container}/{blob}.
// The blob part keeps any virtual directories. Hosts outside blob storage
// leave Account empty.
func ParseBlobURL(raw string) BlobLocation {
	var loc BlobLocation

	u, err := url.Parse(raw)
	if err != nil {
		return loc
	}

	if host := u.Hostname(); strings.HasSuffix(host, blobHostSuffix) {
		loc.Account = strings.TrimSuffix(host, blobHostSuffix)
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return loc
	}
	container, blob, found := strings.Cut(path, "/")
	if !found {
		loc.Blob = container
		return loc
	}
	loc.Container = container
	loc.Blob = blob
	return loc
}
