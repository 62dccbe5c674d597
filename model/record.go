package model

import "github.com/muhammadheryan/resource-matcher/constant"

// Record is the tagged union the store facade writes. Exactly one entity
// field is set and Kind names its collection.
type Record struct {
	Kind     constant.Collection
	User     *UserEntity
	Resource *ResourceEntity
	Need     *NeedEntity
	Feedback *FeedbackEntity
}

func UserRecord(u *UserEntity) Record {
	return Record{Kind: constant.CollectionUsers, User: u}
}

func ResourceRecord(r *ResourceEntity) Record {
	return Record{Kind: constant.CollectionResources, Resource: r}
}

func NeedRecord(n *NeedEntity) Record {
	return Record{Kind: constant.CollectionNeeds, Need: n}
}

func FeedbackRecord(f *FeedbackEntity) Record {
	return Record{Kind: constant.CollectionFeedback, Feedback: f}
}
