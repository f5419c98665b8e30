package patch

const TrackingManagerGUID = "862bec245ffee44b38bda305b5d146dc"

// TrackingManager fills in the serialized defaults missing from the
// TrackingManager component in TENDOR-App.unity.
func TrackingManager() *Patch {
	return New(MustParseGUID(TrackingManagerGUID),
		Field{"wallPrefab", ObjectRef},
		Field{"wallScaleFactor", "1"},
		Field{"recordingAvatarPrefab", ObjectRef},
		Field{"useSkeletalRecording", "1"},
		Field{"playbackAvatarPrefab", ObjectRef},
		Field{"skeletonPrefab", ObjectRef},
		Field{"debugText", ObjectRef},
	)
}
