// Package folder is the file-access boundary of the importer. It walks a
// playback course directory, classifies per-file failures as read vs parse
// issues without aborting the batch, and hands clean documents to the
// convert package. The lesson number comes from the directory segment that
// contains the assets folder, never from document content.
package folder
