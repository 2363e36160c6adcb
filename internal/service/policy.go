// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-task-keeper/models"

// canAccessTask reports whether actorID may read or modify task.
// Only the owner may.
func canAccessTask(actorID int64, task models.Task) bool {
	return actorID > 0 && task.OwnerID == actorID
}
